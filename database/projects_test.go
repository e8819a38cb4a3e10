package database

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web3dir/models"
)

func TestListProjects_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	projects, err := db.ListProjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestListProjects_OrderedByDateDesc(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	InsertTestProject(t, db, "old.xyz", models.NewDate(2023, time.January, 10), []string{"L1"})
	InsertTestProject(t, db, "https://www.newest.io", models.NewDate(2025, time.June, 1), []string{"DeFi", "DEX"})
	InsertTestProject(t, db, "middle.fi", models.NewDate(2024, time.March, 3), nil)

	projects, err := db.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, "https://www.newest.io", projects[0].Link)
	assert.Equal(t, "middle.fi", projects[1].Link)
	assert.Equal(t, "old.xyz", projects[2].Link)

	assert.Equal(t, "2025-06-01", projects[0].Date.String())
	assert.Equal(t, []string{"DeFi", "DEX"}, projects[0].Tags)
	assert.NotNil(t, projects[1].Tags, "missing tags should scan as an empty slice")
	assert.Empty(t, projects[1].Tags)
	assert.False(t, projects[2].CreatedAt.IsZero())
}

func TestListProjects_NoDropsOrDuplicates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	same := models.NewDate(2024, time.May, 5)
	var inserted []int64
	for _, link := range []string{"a.com", "b.com", "c.com", "a.com"} {
		p := InsertTestProject(t, db, link, same, []string{"AI"})
		inserted = append(inserted, p.ID)
	}

	projects, err := db.ListProjects(context.Background())
	require.NoError(t, err)

	var got []int64
	for _, p := range projects {
		got = append(got, p.ID)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, inserted, got)
}

func TestListTags_DistinctSorted(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	day := models.NewDate(2024, time.February, 2)
	InsertTestProject(t, db, "one.xyz", day, []string{"L2", "DeFi"})
	InsertTestProject(t, db, "two.xyz", day, []string{"DeFi", "ZK", "AI"})
	InsertTestProject(t, db, "three.xyz", day, []string{})
	InsertTestProject(t, db, "four.xyz", day, []string{"Based Rollup", "L2"})

	tags, err := db.ListTags(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"AI", "Based Rollup", "DeFi", "L2", "ZK"}, tags)
}

func TestListTags_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	InsertTestProject(t, db, "untagged.xyz", models.NewDate(2024, time.February, 2), nil)

	tags, err := db.ListTags(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	assert.NoError(t, db.Ping(context.Background()))
}

func TestQueries_CanceledContext(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.ListProjects(ctx)
	assert.Error(t, err)
	_, err = db.ListTags(ctx)
	assert.Error(t, err)
	assert.Error(t, db.Ping(ctx))
}
