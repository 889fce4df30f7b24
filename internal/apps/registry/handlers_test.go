package registry

import (
	"context"
	"net/http"
	"testing"

	"github.com/dadprep/dadprep-backend/internal/apps/apptest"
	"github.com/dadprep/dadprep-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dad = "dad@example.com"

type itemResponse struct {
	Message string `json:"message"`
	Data    Item   `json:"data"`
}

func TestAddItemScenario(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var added itemResponse
	status := apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad,
		map[string]string{"name": "Baby Monitor", "price": "149.95"}, &added)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 149.95, added.Data.Price)
	assert.Equal(t, StatusNeeded, added.Data.Status)
	assert.Equal(t, PriorityMedium, added.Data.Priority)
	assert.Equal(t, CategoryOther, added.Data.Category)
	assert.Equal(t, "1772357400000", added.Data.ID)

	var parts Partition
	status = apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/items", dad, nil, &parts)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, parts.Needed, 1)
	assert.Empty(t, parts.Received)
	assert.Equal(t, "Baby Monitor", parts.Needed[0].Name)
}

func TestAddItemAcceptsNumericPriceAndUniqueIDs(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var first, second itemResponse
	apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad,
		map[string]interface{}{"name": "Crib", "price": 299, "priority": "high", "category": "nursery"}, &first)
	apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad,
		map[string]interface{}{"name": "Wipes", "price": "4.5"}, &second)

	assert.Equal(t, 299.0, first.Data.Price)
	assert.Equal(t, PriorityHigh, first.Data.Priority)
	assert.Equal(t, CategoryNursery, first.Data.Category)
	assert.NotEqual(t, first.Data.ID, second.Data.ID)
}

func TestAddItemValidation(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	tests := []struct {
		name string
		body map[string]interface{}
		want string
	}{
		{"missing name", map[string]interface{}{"price": "10"}, ErrMissingFields.Error()},
		{"missing price", map[string]interface{}{"name": "Crib"}, ErrMissingFields.Error()},
		{"bad price", map[string]interface{}{"name": "Crib", "price": "cheap"}, ErrInvalidPrice.Error()},
		{"bad priority", map[string]interface{}{"name": "Crib", "price": "10", "priority": "urgent"}, ErrInvalidPriority.Error()},
		{"bad category", map[string]interface{}{"name": "Crib", "price": "10", "category": "Garden"}, ErrInvalidCategory.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp dto.ErrorResponse
			status := apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad, tt.body, &resp)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.want, resp.Message)
		})
	}

	var parts Partition
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/items", dad, nil, &parts)
	assert.Empty(t, parts.Needed)
}

func TestMarkReceivedIsIdempotent(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var added itemResponse
	apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad,
		map[string]string{"name": "Stroller", "price": "350"}, &added)
	path := "/api/p/registry/items/" + added.Data.ID + "/received"

	var first itemResponse
	status := apptest.DoJSON(t, app, http.MethodPost, path, dad, nil, &first)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, StatusReceived, first.Data.Status)

	before, err := env.Store.Load(context.Background(), "registry-items-"+dad)
	require.NoError(t, err)

	var second itemResponse
	status = apptest.DoJSON(t, app, http.MethodPost, path, dad, nil, &second)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, first.Data, second.Data)

	after, err := env.Store.Load(context.Background(), "registry-items-"+dad)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	var received struct {
		Items []Item `json:"items"`
	}
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/items?status=received", dad, nil, &received)
	require.Len(t, received.Items, 1)

	status, _ = apptest.Do(t, app, http.MethodGet, "/api/p/registry/items?status=lost", dad, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = apptest.Do(t, app, http.MethodPost, "/api/p/registry/items/nope/received", dad, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteItemFromEitherState(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var a, b itemResponse
	apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad, map[string]string{"name": "A", "price": "1"}, &a)
	apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/items", dad, map[string]string{"name": "B", "price": "2"}, &b)
	apptest.Do(t, app, http.MethodPost, "/api/p/registry/items/"+b.Data.ID+"/received", dad, nil)

	status, _ := apptest.Do(t, app, http.MethodDelete, "/api/p/registry/items/"+a.Data.ID, dad, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = apptest.Do(t, app, http.MethodDelete, "/api/p/registry/items/"+b.Data.ID, dad, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = apptest.Do(t, app, http.MethodDelete, "/api/p/registry/items/"+b.Data.ID, dad, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var parts Partition
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/items", dad, nil, &parts)
	assert.Empty(t, parts.Needed)
	assert.Empty(t, parts.Received)
}

func TestPaymentLinks(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))
	eth := "0x52908400098527886E0F7030069857D2E4169EE7"

	var saved struct {
		Message string       `json:"message"`
		Data    PaymentLinks `json:"data"`
	}
	status := apptest.DoJSON(t, app, http.MethodPut, "/api/p/registry/payment-links", dad,
		map[string]string{"venmo": "@johndoe", "ethAddress": eth}, &saved)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Payment links saved", saved.Message)

	var resp dto.ErrorResponse
	status = apptest.DoJSON(t, app, http.MethodPut, "/api/p/registry/payment-links", dad,
		map[string]string{"venmo": "johndoe"}, &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp.Message, "Invalid Venmo username")

	status = apptest.DoJSON(t, app, http.MethodPut, "/api/p/registry/payment-links", dad,
		map[string]string{"ethAddress": "0xnothex"}, &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp.Message, "Invalid ETH address")

	var links PaymentLinks
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/payment-links", dad, nil, &links)
	assert.Equal(t, PaymentLinks{Venmo: "@johndoe", ETHAddress: eth}, links)

	_, raw := apptest.Do(t, app, http.MethodGet, "/api/p/registry/payment-links", "new@example.com", nil)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestLinkedRegistries(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var added struct {
		Message string         `json:"message"`
		Data    LinkedRegistry `json:"data"`
	}
	status := apptest.DoJSON(t, app, http.MethodPost, "/api/p/registry/links", dad,
		map[string]string{"name": "Amazon Baby Registry", "url": "www.amazon.com"}, &added)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "https://www.amazon.com", added.Data.URL)

	status, _ = apptest.Do(t, app, http.MethodPost, "/api/p/registry/links", dad, map[string]string{"name": "Target"})
	assert.Equal(t, http.StatusBadRequest, status)

	var list struct {
		Registries []LinkedRegistry `json:"registries"`
	}
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/links", dad, nil, &list)
	require.Len(t, list.Registries, 1)

	status, _ = apptest.Do(t, app, http.MethodDelete, "/api/p/registry/links/"+added.Data.ID, dad, nil)
	assert.Equal(t, http.StatusOK, status)
	apptest.DoJSON(t, app, http.MethodGet, "/api/p/registry/links", dad, nil, &list)
	assert.Empty(t, list.Registries)
}

func TestEssentialsArePublic(t *testing.T) {
	env := apptest.NewEnv(t)
	app := apptest.NewApp(t, env, New(env))

	var resp struct {
		Essentials []EssentialGroup `json:"essentials"`
	}
	status := apptest.DoJSON(t, app, http.MethodGet, "/api/registry/essentials", "", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Essentials, 4)
}
