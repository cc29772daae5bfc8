package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Moacho78/Parcial-Recetas/internal/catalog"
	"github.com/Moacho78/Parcial-Recetas/internal/comments"
	"github.com/Moacho78/Parcial-Recetas/internal/config"
	"github.com/Moacho78/Parcial-Recetas/internal/favorites"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/addcomment"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/addfavorite"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/addrecipe"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/categorymeals"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/getcategories"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/getcomments"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/getrecipe"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/listfavorites"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/myrecipes"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/randomrecipe"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/register"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/removefavorite"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/resetpassword"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/searchrecipes"
	"github.com/Moacho78/Parcial-Recetas/internal/handler/uploadimage"
	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
	"github.com/Moacho78/Parcial-Recetas/internal/images"
	"github.com/Moacho78/Parcial-Recetas/internal/mail"
	"github.com/Moacho78/Parcial-Recetas/internal/recipe"
	"github.com/Moacho78/Parcial-Recetas/internal/recipedb"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()
	publicBucket := conf.Google.Project + "-public"

	catalogClient := catalog.NewClient(conf.Catalog.BaseURL)
	store := recipedb.NewStore(firestore)
	resolver := recipe.NewResolver(catalogClient, store)
	sessions := favorites.NewSessions()
	aggregator := comments.NewAggregator(store)
	imageWriter := images.NewWriter(storage, publicBucket)
	mailer := mail.NewSender(conf.Mail.SMTPHost, conf.Mail.SMTPPort, conf.Mail.Sender, conf.Mail.Password)

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/auth/"):
			return false
		case strings.HasPrefix(r.URL.Path, "/internal/"):
			return false
		default:
			return true
		}
	}))

	httpapi.HandleJSON(mux, "/api/auth/register", register.NewHandler(fbAuth).Register)
	httpapi.HandleJSON(mux, "/api/auth/resetpassword", resetpassword.NewHandler(fbAuth, mailer).ResetPassword)

	httpapi.HandleJSON(mux, "/api/categories/list", getcategories.NewHandler(catalogClient).GetCategories)
	httpapi.HandleJSON(mux, "/api/categories/meals", categorymeals.NewHandler(catalogClient).CategoryMeals)
	httpapi.HandleJSON(mux, "/api/recipes/search", searchrecipes.NewHandler(catalogClient, store).SearchRecipes)
	httpapi.HandleJSON(mux, "/api/recipes/random", randomrecipe.NewHandler(catalogClient).RandomRecipe)
	httpapi.HandleJSON(mux, "/api/recipes/get", getrecipe.NewHandler(resolver, sessions).GetRecipe)
	httpapi.HandleJSON(mux, "/api/recipes/add", addrecipe.NewHandler(store).AddRecipe)
	httpapi.HandleJSON(mux, "/api/recipes/mine", myrecipes.NewHandler(store).MyRecipes)

	httpapi.HandleJSON(mux, "/api/favorites/add", addfavorite.NewHandler(resolver, sessions).AddFavorite)
	httpapi.HandleJSON(mux, "/api/favorites/remove", removefavorite.NewHandler(sessions).RemoveFavorite)
	httpapi.HandleJSON(mux, "/api/favorites/list", listfavorites.NewHandler(sessions).ListFavorites)

	httpapi.HandleJSON(mux, "/api/comments/list", getcomments.NewHandler(aggregator).GetComments)
	httpapi.HandleJSON(mux, "/api/comments/add", addcomment.NewHandler(aggregator).AddComment)

	mux.Post("/api/images/upload", uploadimage.NewHandler(imageWriter).UploadImage)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
