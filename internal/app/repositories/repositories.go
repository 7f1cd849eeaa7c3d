package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	EventRepository       *EventRepository
	ParticipantRepository *ParticipantRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		EventRepository:       NewEventRepository(db),
		ParticipantRepository: NewParticipantRepository(db),
	}
}
