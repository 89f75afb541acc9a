package restdb_test

import (
	"context"
	"net/url"
	"testing"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
	"digital-kuota-backend/internal/utils/restdb/restdbtest"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *restdbtest.Server
	client *restdb.Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = restdbtest.NewServer()
	s.client = restdb.New(s.server.URL)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestCreateThenGet() {
	ctx := context.Background()

	var created entities.User
	err := s.client.Create(ctx, restdb.CollectionUsers, &entities.User{
		Nama:  "Budi",
		Email: "budi@example.com",
		Saldo: 50_000,
	}, &created)
	s.Require().NoError(err)
	s.NotEmpty(created.ID, "store assigns the id")

	var fetched entities.User
	s.Require().NoError(s.client.Get(ctx, restdb.CollectionUsers, created.ID, &fetched))
	s.Equal(created, fetched)
}

func (s *ClientTestSuite) TestListWithFilter() {
	ctx := context.Background()
	s.server.Seed(restdb.CollectionUsers, &entities.User{Nama: "Budi", Email: "budi@example.com", Password: "rahasia"})
	s.server.Seed(restdb.CollectionUsers, &entities.User{Nama: "Sari", Email: "sari@example.com", Password: "rahasia2"})

	filter := url.Values{}
	filter.Set("email", "sari@example.com")
	filter.Set("password", "rahasia2")

	var users []entities.User
	s.Require().NoError(s.client.List(ctx, restdb.CollectionUsers, filter, &users))
	s.Require().Len(users, 1)
	s.Equal("Sari", users[0].Nama)

	filter.Set("password", "salah")
	s.Require().NoError(s.client.List(ctx, restdb.CollectionUsers, filter, &users))
	s.Empty(users, "credential miss is an empty list, not an error")
}

func (s *ClientTestSuite) TestPatchMergesFields() {
	ctx := context.Background()
	seeded := s.server.Seed(restdb.CollectionUsers, &entities.User{Nama: "Budi", Email: "budi@example.com", Saldo: 10_000})
	id := seeded["id"].(string)

	var updated entities.User
	err := s.client.Patch(ctx, restdb.CollectionUsers, id, map[string]any{"saldo": 35_000}, &updated)
	s.Require().NoError(err)
	s.Equal(int64(35_000), updated.Saldo)
	s.Equal("Budi", updated.Nama, "untouched fields survive the patch")
}

func (s *ClientTestSuite) TestDelete() {
	ctx := context.Background()
	seeded := s.server.Seed(restdb.CollectionTransaksi, &entities.Transaksi{UserID: "1"})
	id := seeded["id"].(string)

	s.Require().NoError(s.client.Delete(ctx, restdb.CollectionTransaksi, id))

	err := s.client.Delete(ctx, restdb.CollectionTransaksi, id)
	s.Require().Error(err)
	s.True(restdb.IsNotFound(err), "second delete is a 404")
}

func (s *ClientTestSuite) TestStatusCodeError() {
	ctx := context.Background()
	s.server.FailPatch[restdb.CollectionUsers] = true
	seeded := s.server.Seed(restdb.CollectionUsers, &entities.User{Nama: "Budi"})

	err := s.client.Patch(ctx, restdb.CollectionUsers, seeded["id"].(string), map[string]any{"saldo": 1}, &entities.User{})
	s.Require().Error(err)

	var statusErr *restdb.StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(500, statusErr.Code)
	s.False(restdb.IsNotFound(err))
}
