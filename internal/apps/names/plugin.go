package names

import (
	"context"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/gofiber/fiber/v2"
)

const favoritesCollection = "favoriteNames"

type NamesPlugin struct {
	remote  *RemoteCatalog
	service *NamesService
	handler *NamesHandler
}

// New picks the catalog and personal-name backends from NAMES_SOURCE.
func New(env *apps.Env) *NamesPlugin {
	p := &NamesPlugin{}

	var catalog Catalog = BuiltinCatalog{}
	var personal PersonalStore = NewLocalPersonalStore(env.Store, env.Metrics)
	if env.Config.NamesSource == config.NamesRemote {
		p.remote = NewRemoteCatalog(env.DB)
		catalog = p.remote
		personal = NewRemotePersonalStore(env.DB)
	}

	favorites := state.NewSet(favoritesCollection, env.Store, env.Metrics)
	p.service = NewNamesService(catalog, personal, favorites, env.Filter, env.Clock())
	p.handler = NewNamesHandler(p.service)
	return p
}

func (p *NamesPlugin) ID() string { return "names" }

func (p *NamesPlugin) Models() []interface{} {
	return []interface{}{&BabyName{}, &PersonalBabyName{}}
}

// Seed fills the remote catalog. The built-in source has nothing to seed.
func (p *NamesPlugin) Seed(ctx context.Context) error {
	if p.remote == nil {
		return nil
	}
	return p.remote.Seed(ctx)
}

func (p *NamesPlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/names", p.handler.Explore)
	router.Post("/names", p.handler.AddPersonal)
	router.Delete("/names/:id", p.handler.RemovePersonal)
	router.Get("/names/favorites", p.handler.ListFavorites)
	router.Post("/names/favorites", p.handler.ToggleFavorite)
}

func (p *NamesPlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/names/catalog", p.handler.Catalog)
	router.Get("/names/wallet/:address", p.handler.ByWallet)
}
