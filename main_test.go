package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/folio-panel/folio/database"
	"github.com/folio-panel/folio/util/crypto"
	"github.com/folio-panel/folio/web/service"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportContent(t *testing.T) {
	db, err := database.InitDB(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer database.CloseDB(db)

	var buf bytes.Buffer
	require.NoError(t, exportContent(db, &buf))

	var home service.HomeContent
	require.NoError(t, json.Unmarshal(buf.Bytes(), &home))
	require.NotNil(t, home.Profile)
	assert.Equal(t, "Your Name", home.Profile.Name)
	assert.Len(t, home.Technologies, 1)
	assert.NotNil(t, home.Education)
	assert.Empty(t, home.Education)
}

func TestUpdateSetting(t *testing.T) {
	db, err := database.InitDB(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer database.CloseDB(db)

	assert.Error(t, updateSetting(db, "root", ""))

	require.NoError(t, updateSetting(db, "root", "s3cret"))
	user, err := service.NewUserService(db).GetFirstUser()
	require.NoError(t, err)
	assert.Equal(t, "root", user.Username)
	assert.True(t, crypto.CheckPasswordHash(user.PasswordHash, "s3cret"))
}
