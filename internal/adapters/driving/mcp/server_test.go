package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPorts() *Ports {
	return &Ports{
		Search:   &mockSearchService{},
		Citation: &mockCitationService{},
		Acts:     &mockActStore{},
	}
}

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{Citation: &mockCitationService{}, Acts: &mockActStore{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("nil citation service returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Acts: &mockActStore{}}
		_, err := NewServer(ports)
		assert.ErrorIs(t, err, ErrMissingCitationService)
	})

	t.Run("nil act store returns error", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}, Citation: &mockCitationService{}}
		_, err := NewServer(ports)
		assert.ErrorIs(t, err, ErrMissingActStore)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("required ports only is valid", func(t *testing.T) {
		assert.NoError(t, validPorts().Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := validPorts()
		ports.Provisions = &mockProvisionStore{}
		ports.Definitions = &mockDefinitionStore{}
		ports.References = &mockReferenceStore{}
		assert.NoError(t, ports.Validate())
	})
}
