package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/crafterm/guitarzero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartiesHandlerEmptyList(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(db)

	w := doGet(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="partyname"`)
}

func TestPartiesHandlerListsParties(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(db)
	require.NoError(t, db.Create(&models.Party{Name: "Rockers"}).Error)

	w := doGet(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rockers")
	assert.Contains(t, w.Body.String(), `href="/scores/1"`)
}

func TestPartyCreateBlankName(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(db)

	w := doPost(router, "/", url.Values{"partyname": {""}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Party{}).Count(&count)
	assert.Zero(t, count)
}

func TestPartyCreateFindOrCreate(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(db)

	first := doPost(router, "/", url.Values{"partyname": {"Rockers"}})
	second := doPost(router, "/", url.Values{"partyname": {"Rockers"}})

	assert.Equal(t, http.StatusFound, first.Code)
	assert.Equal(t, first.Header().Get("Location"), second.Header().Get("Location"))

	var count int64
	db.Model(&models.Party{}).Where("name = ?", "Rockers").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestPartyCreateTrimsName(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(db)

	doPost(router, "/", url.Values{"partyname": {"  Rockers  "}})

	var party models.Party
	require.NoError(t, db.First(&party).Error)
	assert.Equal(t, "Rockers", party.Name)
}

func TestPartyCreateRedirectsToScores(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(db)

	w := doPost(router, "/", url.Values{"partyname": {"Rockers"}})

	var party models.Party
	require.NoError(t, db.First(&party).Error)
	assert.Equal(t, "/scores/1", w.Header().Get("Location"))
	assert.EqualValues(t, 1, party.ID)
}
