package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/config"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
	"github.com/ChrisRistoff/RecipeHub/internal/repository"
)

// Loader inserts demo users and cuisines from JSON files at startup.
type Loader struct {
	users      repository.UserRepository
	cuisines   repository.CuisineRepository
	logger     *zap.Logger
	bcryptCost int
}

// NewLoader constructs a seed loader.
func NewLoader(users repository.UserRepository, cuisines repository.CuisineRepository, logger *zap.Logger, bcryptCost int) *Loader {
	return &Loader{users: users, cuisines: cuisines, logger: logger, bcryptCost: bcryptCost}
}

type seedUser struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	ProfileImg string `json:"profile_img"`
	Password   string `json:"password"`
	Bio        string `json:"bio"`
}

type seedCuisine struct {
	Name       string `json:"name"`
	CuisineImg string `json:"cuisine_img"`
}

// Run loads the seed files from dir. Existing usernames are skipped so the
// loader can run on every boot.
func (l *Loader) Run(ctx context.Context, cfg config.SeedConfig) error {
	if !cfg.Enabled {
		return nil
	}

	if err := l.seedCuisines(ctx, filepath.Join(cfg.Dir, "cuisines.json")); err != nil {
		return err
	}
	return l.seedUsers(ctx, filepath.Join(cfg.Dir, "users.json"))
}

func (l *Loader) seedCuisines(ctx context.Context, path string) error {
	var entries []seedCuisine
	if err := readSeedFile(path, &entries); err != nil {
		return err
	}

	for _, entry := range entries {
		cuisine := &domain.Cuisine{Name: entry.Name, CuisineImg: entry.CuisineImg}
		if err := l.cuisines.Create(ctx, cuisine); err != nil {
			return fmt.Errorf("seed cuisine %s: %w", entry.Name, err)
		}
	}
	l.logger.Info("seeded cuisines", zap.Int("count", len(entries)))
	return nil
}

func (l *Loader) seedUsers(ctx context.Context, path string) error {
	var entries []seedUser
	if err := readSeedFile(path, &entries); err != nil {
		return err
	}

	inserted := 0
	for _, entry := range entries {
		hash, err := auth.HashPassword(entry.Password, l.bcryptCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", entry.Username, err)
		}
		user := &domain.User{
			Username:     entry.Username,
			Name:         entry.Name,
			ProfileImg:   entry.ProfileImg,
			Bio:          entry.Bio,
			PasswordHash: hash,
			Status:       true,
		}
		if err := l.users.Create(ctx, user); err != nil {
			if errors.Is(err, auth.ErrDuplicateUsername) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", entry.Username, err)
		}
		inserted++
	}
	l.logger.Info("seeded users", zap.Int("count", inserted))
	return nil
}

func readSeedFile(path string, out interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read seed file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return nil
}
