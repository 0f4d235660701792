package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRabbitPublisherClose(t *testing.T) {
	// nil receiver and empty publisher both close cleanly, so startup code
	// can defer Close and discard its error alongside the other closers
	var p *RabbitPublisher
	assert.NoError(t, p.Close())

	assert.NoError(t, (&RabbitPublisher{}).Close())
}
