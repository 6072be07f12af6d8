package auth

import (
	"climate-solutions/app/server/models"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// 测试用的低成本参数
var testParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newTestStore(coll *mongo.Collection) (*Store, *stepClock) {
	clock := &stepClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := New(coll)
	s.params = testParams
	s.now = clock.now
	return s, clock
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func userDoc(t *testing.T, u models.User) bson.D {
	t.Helper()

	raw, err := bson.Marshal(u)
	require.NoError(t, err)

	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))
	return d
}

func hashFor(t *testing.T, password string) string {
	t.Helper()

	hash, err := argon2id.CreateHash(password, testParams)
	require.NoError(t, err)
	return hash
}

func TestRegister_PasswordMismatchSkipsStore(t *testing.T) {
	// 集合为 nil ，一旦访问存储就会 panic
	s := New(nil)

	err := s.Register(context.Background(), RegisterInput{
		UserName:  "alice",
		Password:  "secret",
		Password2: "Secret",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegister(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	in := RegisterInput{
		UserName:  "alice",
		Password:  "secret",
		Password2: "secret",
		Email:     "alice@example.com",
	}

	mt.Run("stores hashed password", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, s.Register(context.Background(), in))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "insert", evt.CommandName)

		docs, err := evt.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, docs, 1)

		doc := docs[0].Document()
		assert.Equal(mt, "alice", doc.Lookup("userName").StringValue())
		assert.Equal(mt, "alice@example.com", doc.Lookup("email").StringValue())

		hash := doc.Lookup("password").StringValue()
		assert.NotEqual(mt, "secret", hash)
		assert.True(mt, strings.HasPrefix(hash, "$argon2id$"))

		match, err := argon2id.ComparePasswordAndHash("secret", hash)
		require.NoError(mt, err)
		assert.True(mt, match)
	})

	mt.Run("duplicate user name", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: test.users index: userName_1 dup key",
			}),
		)

		require.NoError(mt, s.Register(context.Background(), in))
		assert.ErrorIs(mt, s.Register(context.Background(), in), ErrUserNameTaken)
	})

	mt.Run("other insert failure", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		err := s.Register(context.Background(), in)
		assert.ErrorIs(mt, err, ErrCreateUser)
		assert.NotErrorIs(mt, err, ErrUserNameTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	stored := models.User{
		UserName:     "alice",
		Password:     hashFor(t, "secret"),
		Email:        "alice@example.com",
		LoginHistory: []models.LoginEntry{},
	}

	mt.Run("unknown user", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := s.Authenticate(context.Background(), LoginInput{UserName: "bob", Password: "secret"})
		assert.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("incorrect password", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, userDoc(mt.T, stored)))

		_, err := s.Authenticate(context.Background(), LoginInput{UserName: "alice", Password: "nope"})
		assert.ErrorIs(mt, err, ErrIncorrectPassword)

		// 只有一次查询，没有写入
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})

	mt.Run("first login records history", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, userDoc(mt.T, stored)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		user, err := s.Authenticate(context.Background(), LoginInput{
			UserName:  "alice",
			Password:  "secret",
			UserAgent: "Mozilla/5.0",
		})
		require.NoError(mt, err)
		require.Len(mt, user.LoginHistory, 1)
		assert.Equal(mt, "Mozilla/5.0", user.LoginHistory[0].UserAgent)
		assert.Equal(mt, "alice@example.com", user.Email)

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "update", events[1].CommandName)
	})

	mt.Run("history capped at eight", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		current := stored

		for i := 1; i <= 9; i++ {
			mt.AddMockResponses(
				mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, userDoc(mt.T, current)),
				mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			)

			user, err := s.Authenticate(context.Background(), LoginInput{
				UserName:  "alice",
				Password:  "secret",
				UserAgent: fmt.Sprintf("agent-%d", i),
			})
			require.NoError(mt, err)
			current = *user
		}

		require.Len(mt, current.LoginHistory, models.LoginHistoryLimit)
		for i, entry := range current.LoginHistory {
			assert.Equal(mt, fmt.Sprintf("agent-%d", 9-i), entry.UserAgent)
			if i > 0 {
				assert.True(mt, entry.DateTime.Before(current.LoginHistory[i-1].DateTime))
			}
		}
	})

	mt.Run("history update failure", func(mt *mtest.T) {
		s, _ := newTestStore(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, userDoc(mt.T, stored)),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value", Name: "BadValue"}),
		)

		_, err := s.Authenticate(context.Background(), LoginInput{UserName: "alice", Password: "secret"})
		assert.ErrorIs(mt, err, ErrVerifyUser)
	})
}

func TestPrependLogin(t *testing.T) {
	var history []models.LoginEntry
	for i := 0; i < 10; i++ {
		history = PrependLogin(history, models.LoginEntry{UserAgent: fmt.Sprintf("ua-%d", i)})
		want := i + 1
		if want > models.LoginHistoryLimit {
			want = models.LoginHistoryLimit
		}
		require.Len(t, history, want)
		assert.Equal(t, fmt.Sprintf("ua-%d", i), history[0].UserAgent)
	}

	assert.Equal(t, "ua-2", history[len(history)-1].UserAgent)
}

func TestPrependLogin_DoesNotAliasInput(t *testing.T) {
	history := []models.LoginEntry{{UserAgent: "old"}}
	next := PrependLogin(history, models.LoginEntry{UserAgent: "new"})

	next[1].UserAgent = "changed"
	assert.Equal(t, "old", history[0].UserAgent)
}
