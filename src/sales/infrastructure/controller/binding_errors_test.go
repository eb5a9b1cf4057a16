package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineFromNamespace(t *testing.T) {
	assert.Equal(t, 0, lineFromNamespace("CreateSaleRequest.CustomerID"))
	assert.Equal(t, 1, lineFromNamespace("CreateSaleRequest.Lines[0].Quantity"))
	assert.Equal(t, 12, lineFromNamespace("ReturnLinesRequest.Items[11].ProductID"))
	assert.Equal(t, 0, lineFromNamespace("CreateSaleRequest.Lines[x].Quantity"))
}
