// Command createadmin bootstraps a super admin account. The register
// endpoint requires an authenticated super admin, so the first account
// has to come from here.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/corexify/backend/internal/config"
	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/repositories"
	"github.com/corexify/backend/internal/utils"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("connect to mongo: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("create indexes: %v", err)
	}
	adminRepo := repositories.NewAdminUserRepository(db)

	existing, err := adminRepo.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("lookup admin: %v", err)
	}
	if existing != nil {
		log.Fatalf("admin %s already exists (super admin: %v)", existing.Email, existing.IsSuperAdmin)
	}

	hash, err := utils.Hash(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	id, err := adminRepo.Create(ctx, &models.AdminUser{
		Email:        *email,
		PasswordHash: hash,
		Name:         *name,
		IsSuperAdmin: true,
	})
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("created super admin %s (id %s)\n", *email, id)
}
