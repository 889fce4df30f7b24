package profile

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/apps/apptest"
	"github.com/dadprep/dadprep-backend/internal/apps/registry"
	"github.com/dadprep/dadprep-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dad = "dad@example.com"

type fixture struct {
	env  *apps.Env
	reg  *registry.RegistryPlugin
	user *models.User
}

func setup(t *testing.T) (*fixture, func(method, path, user string, body, out interface{}) int) {
	t.Helper()
	env := apptest.NewEnv(t)
	reg := registry.New(env)
	app := apptest.NewApp(t, env, reg, New(env, reg.Service()))

	user := models.NewUser(dad, "John Smith", "hash")
	user.ID = apptest.UserID(dad)
	require.NoError(t, env.DB.Create(user).Error)

	do := func(method, path, u string, body, out interface{}) int {
		return apptest.DoJSON(t, app, method, path, u, body, out)
	}
	return &fixture{env: env, reg: reg, user: user}, do
}

func TestGetProfile(t *testing.T) {
	f, do := setup(t)

	var view ProfileView
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/p/profile", dad, nil, &view))
	assert.Equal(t, "John Smith", view.Name)
	assert.False(t, view.ShowRegistry)
	assert.False(t, view.ShowPaymentLinks)
	assert.True(t, strings.HasPrefix(view.ProfileSlug, "john-smith-"))
	assert.Equal(t, "https://dadprep.test/profile/"+f.user.ProfileSlug, view.Share.URL)
	assert.Equal(t, "John Smith's Baby Registry", view.Share.Title)
}

func TestUpdateNameKeepsSlug(t *testing.T) {
	f, do := setup(t)

	var resp struct {
		Message string      `json:"message"`
		Data    ProfileView `json:"data"`
	}
	require.Equal(t, http.StatusOK, do(http.MethodPut, "/api/p/profile", dad, map[string]string{"name": "  Big John "}, &resp))
	assert.Equal(t, "Your name has been updated", resp.Message)
	assert.Equal(t, "Big John", resp.Data.Name)
	assert.Equal(t, f.user.ProfileSlug, resp.Data.ProfileSlug)

	require.Equal(t, http.StatusOK, do(http.MethodPut, "/api/p/profile", dad, map[string]string{"name": "Big John"}, &resp))
	assert.Equal(t, "Your name is unchanged", resp.Message)

	assert.Equal(t, http.StatusBadRequest, do(http.MethodPut, "/api/p/profile", dad, map[string]string{"name": " "}, nil))
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPut, "/api/p/profile", dad, map[string]string{"name": "call 555-123-4567"}, nil))
}

func TestUpdatePrivacyIsPartial(t *testing.T) {
	_, do := setup(t)

	var resp struct {
		Data ProfileView `json:"data"`
	}
	require.Equal(t, http.StatusOK, do(http.MethodPut, "/api/p/profile/privacy", dad, map[string]bool{"show_registry": true}, &resp))
	assert.True(t, resp.Data.ShowRegistry)
	assert.False(t, resp.Data.ShowPaymentLinks)

	require.Equal(t, http.StatusOK, do(http.MethodPut, "/api/p/profile/privacy", dad, map[string]bool{"show_payment_links": true}, &resp))
	assert.True(t, resp.Data.ShowRegistry)
	assert.True(t, resp.Data.ShowPaymentLinks)
}

func TestPublicProfileRespectsPrivacy(t *testing.T) {
	f, do := setup(t)
	ctx := context.Background()
	svc := f.reg.Service()

	item, err := svc.AddItem(ctx, dad, registry.AddItemRequest{Name: "Crib", Price: "299"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, dad, registry.AddItemRequest{Name: "Stroller", Price: "150"})
	require.NoError(t, err)
	_, err = svc.MarkReceived(ctx, dad, item.ID)
	require.NoError(t, err)
	_, err = svc.SavePaymentLinks(ctx, dad, registry.PaymentLinks{Venmo: "@johnsmith"})
	require.NoError(t, err)

	path := "/api/profiles/" + f.user.ProfileSlug

	var pub PublicProfile
	require.Equal(t, http.StatusOK, do(http.MethodGet, path, "", nil, &pub))
	assert.Equal(t, "John Smith", pub.Name)
	assert.Nil(t, pub.NeededItems)
	assert.Nil(t, pub.PaymentLinks)

	require.NoError(t, f.env.DB.Model(f.user).Updates(map[string]interface{}{
		"show_registry": true, "show_payment_links": true,
	}).Error)

	pub = PublicProfile{}
	require.Equal(t, http.StatusOK, do(http.MethodGet, path, "", nil, &pub))
	require.Len(t, pub.NeededItems, 1)
	assert.Equal(t, "Stroller", pub.NeededItems[0].Name)
	require.NotNil(t, pub.PaymentLinks)
	assert.Equal(t, "@johnsmith", pub.PaymentLinks.Venmo)

	var preview PublicProfile
	require.Equal(t, http.StatusOK, do(http.MethodGet, "/api/p/profile/preview", dad, nil, &preview))
	assert.Equal(t, pub, preview)
}

func TestPublicProfileUnknownSlug(t *testing.T) {
	_, do := setup(t)
	assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/api/profiles/nobody-abc123", "", nil, nil))
}
