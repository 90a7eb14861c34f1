package cmd

import (
	"context"
	"testing"

	"devclub-portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSourceMemory(t *testing.T) {
	cfg := config.Config{DataSource: config.SourceMemory, DemoPassword: "devclub"}

	source, err := openSource(context.Background(), cfg)
	require.NoError(t, err)
	defer source.close()

	members, err := source.repo.Members(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 15)

	cred, err := source.credentials.GetByEmail(context.Background(), "olivia@kle.edu")
	require.NoError(t, err)
	assert.Equal(t, 15, cred.MemberID)
}

func TestOpenSourceUnknown(t *testing.T) {
	_, err := openSource(context.Background(), config.Config{DataSource: "csv"})
	assert.Error(t, err)
}
