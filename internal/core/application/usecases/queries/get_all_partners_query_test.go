package queries_test

import (
	"testing"

	"bakeshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllPartnersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllPartnersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllPartnersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllPartnersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllPartnersQueryIsNotConstructed)
}
