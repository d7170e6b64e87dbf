package store

import (
	"context"

	"donation-dashboard-service/internal/domain"
)

func (s *Store) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[domain.User](ctx, s.backend, KeyUsers)
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := loadList[domain.User](ctx, s.backend, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetUserByEmail returns the first user registered with the given email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := loadList[domain.User](ctx, s.backend, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// CreateUser assigns the next sequential id, stamps the creation time and
// appends the user.
func (s *Store) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := loadList[domain.User](ctx, s.backend, KeyUsers)
	if err != nil {
		return nil, err
	}

	user.ID = 1
	for _, existing := range users {
		if existing.ID >= user.ID {
			user.ID = existing.ID + 1
		}
	}
	user.CreatedAt = s.timestamp()

	users = append(users, user)
	if err := saveList(ctx, s.backend, KeyUsers, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser shallow-merges the patch over the stored record.
func (s *Store) UpdateUser(ctx context.Context, id int, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := loadList[domain.User](ctx, s.backend, KeyUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		if patch.Role != nil {
			users[i].Role = *patch.Role
		}
		if patch.Name != nil {
			users[i].Name = *patch.Name
		}
		if patch.Email != nil {
			users[i].Email = *patch.Email
		}
		if patch.Password != nil {
			users[i].Password = *patch.Password
		}
		if patch.TeamID != nil {
			users[i].TeamID = *patch.TeamID
		}
		if patch.TeamIDs != nil {
			users[i].TeamIDs = *patch.TeamIDs
		}
		users[i].UpdatedAt = s.timestamp()

		if err := saveList(ctx, s.backend, KeyUsers, users); err != nil {
			return nil, err
		}
		updated := users[i]
		return &updated, nil
	}
	return nil, domain.ErrUserNotFound
}
