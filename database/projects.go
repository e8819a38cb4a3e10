package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"web3dir/metrics"
	"web3dir/models"
)

const (
	columnID        = "id"
	columnLink      = "link"
	columnDate      = "date"
	columnTags      = "tags"
	columnCreatedAt = "created_at"
)

// Ties on date keep whatever order postgres returns; callers must not rely on it.
var listProjectsQuery = fmt.Sprintf(`
		SELECT %s, %s, %s, COALESCE(%s, '{}'), %s
		FROM projects
		ORDER BY %s DESC
	`, columnID, columnLink, columnDate, columnTags, columnCreatedAt, columnDate)

// COLLATE "C" gives a byte-wise ascending order independent of the server locale.
var listTagsQuery = fmt.Sprintf(`
		SELECT DISTINCT tag COLLATE "C" AS tag
		FROM projects, UNNEST(%s) AS tag
		WHERE tag IS NOT NULL
		ORDER BY tag
	`, columnTags)

// ListProjects returns every project, newest date first.
// Returns empty slice (not nil) if the table is empty.
func (db *DB) ListProjects(ctx context.Context) (projects []models.Project, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveQuery("list_projects", time.Since(start).Seconds(), err)
		log.Printf("ListProjects: duration=%v count=%d", time.Since(start), len(projects))
	}()

	rows, err := db.Pool.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// ListTags returns the distinct set of tags across all projects, sorted
// ascending. Projects with no tags contribute nothing.
func (db *DB) ListTags(ctx context.Context) (tags []string, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveQuery("list_tags", time.Since(start).Seconds(), err)
		log.Printf("ListTags: duration=%v count=%d", time.Since(start), len(tags))
	}()

	rows, err := db.Pool.Query(ctx, listTagsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Link,
		&project.Date,
		&project.Tags,
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}
	return &project, nil
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func scanTags(rows rowsScanner) ([]string, error) {
	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}
