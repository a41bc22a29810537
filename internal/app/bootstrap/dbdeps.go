// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/wandernext/internal/app/store/document"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds storage dependencies for the app. Docs is always set;
// the Mongo client is non-nil only when store_backend is "mongo".
type DBDeps struct {
	Docs        *document.Store
	MongoClient *mongo.Client
}
