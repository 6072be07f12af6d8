package constants

const (
	MongoDefaultDatabase = "test"
	MongoUsersCollection = "users"
)
