//go:build integration

package repo

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/config"
	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/postgres"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/trm"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "laundry",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	port, err := strconv.Atoi(mapped.Port())
	require.NoError(t, err)

	db, err := postgres.New(ctx, config.Postgres{
		Host:     host,
		Port:     port,
		DBName:   "laundry",
		User:     testUser,
		Password: testPassword,
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migration, err := os.ReadFile("../../migrations/001_init.up.sql")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, string(migration))
	require.NoError(t, err)

	return db
}

func TestPostgresRepo(t *testing.T) {
	db := setupPostgres(t)
	repo := NewPostgresRepo(db)
	txManager := trm.NewManager(db, nil)
	ctx := context.Background()

	student, err := repo.CreateUser(ctx, entities.Profile{
		Email:     "asha@campus.edu",
		FullName:  "Asha Rao",
		RegNumber: "21BCE1001",
		Mobile:    "9000000000",
		Role:      entities.RoleStudent,
		Hostel:    "GANGA",
	}, "hash")
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, entities.Profile{
			Email: "asha@campus.edu", Role: entities.RoleStudent,
		}, "hash")
		assert.ErrorIs(t, err, entities.ErrUserExists)
	})

	t.Run("find user", func(t *testing.T) {
		profile, hash, err := repo.FindUserByEmail(ctx, "asha@campus.edu")
		require.NoError(t, err)
		assert.Equal(t, student.UserID, profile.UserID)
		assert.Equal(t, "hash", hash)

		_, _, err = repo.FindUserByEmail(ctx, "nobody@campus.edu")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("seeded slots", func(t *testing.T) {
		slots, err := repo.ListSlots(ctx)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "11:00 AM", slots[0].Label)
		assert.Equal(t, entities.DefaultSlotCapacity, slots[2].TotalCapacity)
	})

	t.Run("slot fills up", func(t *testing.T) {
		for range entities.DefaultSlotCapacity {
			require.NoError(t, repo.ReserveSlot(ctx, "6:30 PM"))
		}
		assert.ErrorIs(t, repo.ReserveSlot(ctx, "6:30 PM"), entities.ErrSlotFull)
		assert.ErrorIs(t, repo.ReserveSlot(ctx, "9:00 PM"), entities.ErrSlotNotFound)
	})

	now := time.Now().UTC().Truncate(time.Millisecond)
	order, err := entities.NewOrder("ORD-1-AAAA", student.UserID, []entities.CartLineItem{
		{ID: "l1", ServiceType: entities.ServiceWashing, Counts: map[string]int{"shirts": 2, "trousers": 1}},
	}, entities.PickupLocation{Hostel: "GANGA", Floor: 6}, "3:00 PM", now)
	require.NoError(t, err)

	t.Run("save in transaction", func(t *testing.T) {
		err := txManager.Do(ctx, func(ctx context.Context) error {
			if err := repo.ReserveSlot(ctx, order.SlotLabel); err != nil {
				return err
			}
			return repo.SaveOrder(ctx, order)
		})
		require.NoError(t, err)

		got, err := repo.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.LineItems, got.LineItems)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "21BCE1001", got.Owner.RegNumber)
	})

	t.Run("list", func(t *testing.T) {
		own, err := repo.ListOrdersByOwner(ctx, student.UserID)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Nil(t, own[0].Owner)

		all, err := repo.ListAllOrders(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.NotNil(t, all[0].Owner)
	})

	t.Run("status compare and set", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, order.ID, entities.StatusPending, entities.StatusInProcess, now)
		require.NoError(t, err)

		err = repo.UpdateStatus(ctx, order.ID, entities.StatusPending, entities.StatusPickedUp, now)
		assert.ErrorIs(t, err, entities.ErrStatusConflict)

		err = repo.UpdateStatus(ctx, "ORD-missing", entities.StatusPending, entities.StatusPickedUp, now)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	_, err = repo.GetOrder(ctx, "ORD-missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
