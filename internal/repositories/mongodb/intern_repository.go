package mongodb

import (
	"context"
	"errors"
	"regexp"

	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/ArowuTest/intern-dashboard/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the collection holding intern documents
const CollectionName = "interns"

// Compile-time check to ensure InternRepository implements the interface
var _ repositories.InternRepository = (*InternRepository)(nil)

// withoutPassword is the projection applied to every read
var withoutPassword = bson.M{"password": 0}

// InternRepository handles MongoDB operations for Intern
type InternRepository struct {
	collection *mongo.Collection
}

// NewInternRepository creates a new InternRepository
func NewInternRepository(db *mongo.Database) *InternRepository {
	return &InternRepository{
		collection: db.Collection(CollectionName),
	}
}

// EnsureIndexes creates the unique email and referral code indexes. The
// default index names are kept so an existing collection carrying the same
// unique indexes is accepted as is.
func (r *InternRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "referralCode", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// Create inserts a new intern. Unique index violations come back as
// *repositories.DuplicateKeyError.
func (r *InternRepository) Create(ctx context.Context, intern *models.Intern) error {
	if err := intern.Validate(); err != nil {
		return err
	}
	if intern.ID.IsZero() {
		intern.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, intern)
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

// FindByID finds an intern by ID
func (r *InternRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Intern, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail finds an intern by exact email
func (r *InternRepository) FindByEmail(ctx context.Context, email string) (*models.Intern, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *InternRepository) findOne(ctx context.Context, filter bson.M) (*models.Intern, error) {
	var intern models.Intern
	opts := options.FindOne().SetProjection(withoutPassword)
	err := r.collection.FindOne(ctx, filter, opts).Decode(&intern)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &intern, nil
}

// FindAll retrieves all interns in natural order
func (r *InternRepository) FindAll(ctx context.Context) ([]*models.Intern, error) {
	var interns []*models.Intern
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &interns); err != nil {
		return nil, err
	}
	if interns == nil {
		interns = []*models.Intern{}
	}
	return interns, nil
}

// Count returns the number of interns
func (r *InternRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Ping checks that the primary is reachable
func (r *InternRepository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}

var (
	// dupKeyField matches the first key of "dup key: { email: ... }"
	dupKeyField = regexp.MustCompile(`dup key: \{\s*"?([A-Za-z0-9_.]+)"?\s*:`)
	// defaultIndexField matches a server-named single field index such as
	// "index: email_1". Servers before 4.2 leave the dup key unnamed.
	defaultIndexField = regexp.MustCompile(`index: (?:[A-Za-z0-9_.]*\$)?([A-Za-z0-9.]+)_-?1 dup key: \{\s*:`)
)

// translateWriteError turns E11000 errors into *repositories.DuplicateKeyError
// naming the violated field. The field is read from the duplicated key; the
// index name is only consulted when the key is unnamed and the index has a
// default name.
func translateWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return &repositories.DuplicateKeyError{Field: duplicateField(err), Err: err}
}

func duplicateField(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, writeErr := range we.WriteErrors {
			if field := duplicateFieldFromMessage(writeErr.Message); field != "" {
				return field
			}
		}
	}
	return duplicateFieldFromMessage(err.Error())
}

func duplicateFieldFromMessage(msg string) string {
	if m := dupKeyField.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := defaultIndexField.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}
