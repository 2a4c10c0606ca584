// Package repositories declares the Ops API's persistence interfaces,
// kept separate from internal/store (the settlement engine's gateway
// interfaces) since the admin-user surface is ambient, not domain.
package repositories

import (
	"context"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUserRepository persists the Ops API's admin accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	Update(ctx context.Context, adminUser *models.AdminUser) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.AdminUser, error)
}
