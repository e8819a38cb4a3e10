package handlers

import (
	"context"

	"web3dir/models"
)

// ProjectLister is the read the projects endpoint needs. *database.DB satisfies it.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is everything the API reads from the database.
type Store interface {
	ProjectLister
	TagLister
	Pinger
}
