// Demo CLI del SDK: restaura la sesión persistida (o se conecta con las
// credenciales dadas), recorre el catálogo y ejercita panier y favoris.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"github.com/toslinrazafy/cosmetique-client/internal/application/session"
	"github.com/toslinrazafy/cosmetique-client/internal/application/shop"
	"github.com/toslinrazafy/cosmetique-client/internal/application/store"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/localstore"
	"github.com/toslinrazafy/cosmetique-client/internal/infrastructure/rest"
	"github.com/toslinrazafy/cosmetique-client/pkg/config"
	"github.com/toslinrazafy/cosmetique-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "email de connexion")
	password := flag.String("password", "", "mot de passe")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("démarrage du client")

	api, err := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("client REST")
	}
	storage, err := localstore.NewFileStorage(cfg.Session.File)
	if err != nil {
		log.Fatal().Err(err).Msg("stockage de session")
	}

	auth := session.NewStore(api, storage, log)
	cart := store.NewCart(api)
	favorites := store.NewFavorites(api)
	products := store.NewProducts(api)
	provider := shop.NewProvider(auth, cart, favorites)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	user := auth.Restore()
	if user == nil {
		if *email == "" || *password == "" {
			log.Fatal().Msg("aucune session persistée: --email et --password requis")
		}
		user, err = auth.Login(ctx, *email, *password)
		if err != nil {
			log.Fatal().Err(err).Msg("connexion")
		}
	}
	log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("session active")

	if decision := auth.Resolve(session.ZoneShop); !decision.Allow {
		log.Fatal().Str("redirect", decision.RedirectTo).Msg("accès boutique refusé")
	}

	if err := provider.OnUserChange(ctx); err != nil {
		log.Fatal().Err(err).Msg("chargement panier/favoris")
	}

	catalog, err := products.FetchAll(ctx, store.ScopeClient)
	if err != nil {
		log.Fatal().Err(err).Msg("catalogue")
	}
	log.Info().Int("produits", len(catalog)).Msg("catalogue chargé")

	for _, p := range catalog {
		if p.InStock() {
			if err := provider.AddToCart(ctx, p.ID, 1); err != nil {
				log.Error().Err(err).Int64("product_id", p.ID).Msg("ajout au panier")
				break
			}
			log.Info().
				Str("produit", p.Name).
				Str("prix", p.Price.String()).
				Msg("ajouté au panier")
			break
		}
	}

	log.Info().
		Int("articles", provider.CartCount()).
		Str("total", provider.CartTotal().String()).
		Msg("état du panier")
}
