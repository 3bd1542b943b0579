package users

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Repository handles user persistence in the users collection, keyed by uid.
type Repository struct {
	conn *fs.Client
}

// NewRepository binds a Firestore client to user operations.
func NewRepository(conn *fs.Client) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) doc(uid string) *fs.DocumentRef {
	return r.conn.Collection(firestore.CollectionUsers).Doc(uid)
}

// Get loads a user document by uid.
func (r *Repository) Get(ctx context.Context, uid string) (*models.User, error) {
	snap, err := r.doc(uid).Get(ctx)
	if err != nil {
		if firestore.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode user")
	}
	return &user, nil
}

// UpsertMerge writes the user document, merging with any existing fields.
func (r *Repository) UpsertMerge(ctx context.Context, user models.User) error {
	if _, err := r.doc(user.UID).Set(ctx, user, fs.MergeAll); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save user")
	}
	return nil
}

// UpdateRole partially updates the role field. Fails when the document does
// not exist, matching the admin set-role contract.
func (r *Repository) UpdateRole(ctx context.Context, uid string, role enums.Role) error {
	_, err := r.doc(uid).Update(ctx, []fs.Update{{Path: "role", Value: role.String()}})
	if err != nil {
		if firestore.IsNotFound(err) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update role")
	}
	return nil
}

// List returns every user document.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	iter := r.conn.Collection(firestore.CollectionUsers).Documents(ctx)
	defer iter.Stop()

	var out []models.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
		}
		var user models.User
		if err := snap.DataTo(&user); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode user")
		}
		out = append(out, user)
	}
	return out, nil
}

// EmailsByRole returns the addresses of every user holding the given role.
func (r *Repository) EmailsByRole(ctx context.Context, role enums.Role) ([]string, error) {
	iter := r.conn.Collection(firestore.CollectionUsers).
		Where("role", "==", role.String()).
		Documents(ctx)
	defer iter.Stop()

	var emails []string
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "query users by role")
		}
		var user models.User
		if err := snap.DataTo(&user); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode user")
		}
		if user.Email != "" {
			emails = append(emails, user.Email)
		}
	}
	return emails, nil
}
