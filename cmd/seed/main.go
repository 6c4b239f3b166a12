// Command seed fills the database with fake users, tags, likes and
// messages for local development. Every seeded account shares the
// password printed at the end of the run.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/M-U-C-K-A/matcha/internal/common/database"
	"github.com/M-U-C-K-A/matcha/internal/config"
)

const (
	numUsers     = 500
	seedPassword = "Seedling12$"
)

var sampleTags = []string{
	"vegan", "geek", "music", "sport", "travel", "nature", "photography",
	"gaming", "cooking", "reading", "movies", "yoga", "coffee", "wine",
	"art", "dance", "hiking", "beach", "party", "fitness", "tech",
	"fashion", "food", "pets", "cars", "books", "series", "anime",
	"climbing", "running",
}

type city struct {
	name string
	lat  float64
	lon  float64
}

var cities = []city{
	{"Paris", 48.8566, 2.3522},
	{"Lyon", 45.7640, 4.8357},
	{"Marseille", 43.2965, 5.3698},
	{"Toulouse", 43.6047, 1.4442},
	{"Nice", 43.7102, 7.2620},
	{"Nantes", 47.2184, -1.5536},
	{"Bordeaux", 44.8378, -0.5792},
	{"Lille", 50.6292, 3.0573},
	{"Strasbourg", 48.5734, 7.7521},
	{"Montpellier", 43.6108, 3.8767},
	{"Rennes", 48.1173, -1.6778},
	{"Grenoble", 45.1885, 5.7245},
}

var genders = []string{"male", "female", "non-binary"}
var preferences = []string{"male", "female", "bisexual"}

func main() {
	log.SetFlags(log.Ldate | log.Ltime)

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found (%v), using environment variables", err)
	}
	cfg := config.Load()

	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cfg.BCryptCost)
	if err != nil {
		log.Fatal("failed to hash seed password: ", err)
	}

	fake := faker.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Println("seeding tags...")
	tagIDs := seedTags(db)

	log.Printf("seeding %d users...", numUsers)
	userIDs := seedUsers(db, fake, rng, string(hash))

	log.Println("seeding interests...")
	seedInterests(db, rng, userIDs, tagIDs)

	log.Println("seeding likes and messages...")
	seedLikes(db, fake, rng, userIDs)

	log.Printf("done: %d users seeded, password %q", len(userIDs), seedPassword)
}

func seedTags(db *sqlx.DB) []int64 {
	ids := make([]int64, 0, len(sampleTags))
	for _, slug := range sampleTags {
		var id int64
		err := db.QueryRowx(`
			INSERT INTO tags (slug) VALUES ($1)
			ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
			RETURNING id
		`, slug).Scan(&id)
		if err != nil {
			log.Fatal("failed to seed tag: ", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func seedUsers(db *sqlx.DB, fake faker.Faker, rng *rand.Rand, passwordHash string) []int64 {
	ids := make([]int64, 0, numUsers)

	for i := 0; i < numUsers; i++ {
		person := fake.Person()
		firstname := person.FirstName()
		lastname := person.LastName()
		username := makeUsername(firstname, lastname, rng)
		email := fmt.Sprintf("%s@%s", username, fake.Internet().Domain())

		home := cities[rng.Intn(len(cities))]
		lat := home.lat + (rng.Float64()-0.5)*0.1
		lon := home.lon + (rng.Float64()-0.5)*0.1

		birthdate := time.Now().AddDate(-18-rng.Intn(40), 0, -rng.Intn(365))

		var id int64
		err := db.QueryRowx(`
			INSERT INTO profiles (
				email, username, firstname, lastname, password,
				gender, sex_preference, bio, birthdate, is_verified,
				latitude, longitude, city
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10, $11, $12)
			RETURNING id
		`,
			email, username, firstname, lastname, passwordHash,
			genders[rng.Intn(len(genders))], preferences[rng.Intn(len(preferences))],
			fake.Lorem().Sentence(8), birthdate, lat, lon, home.name,
		).Scan(&id)
		if err != nil {
			log.Fatal("failed to seed user: ", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func seedInterests(db *sqlx.DB, rng *rand.Rand, userIDs, tagIDs []int64) {
	for _, userID := range userIDs {
		count := 2 + rng.Intn(5)
		for _, idx := range rng.Perm(len(tagIDs))[:count] {
			_, err := db.Exec(`
				INSERT INTO users_preferences (user_id, tag_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, userID, tagIDs[idx])
			if err != nil {
				log.Fatal("failed to seed interest: ", err)
			}
		}
	}
}

func seedLikes(db *sqlx.DB, fake faker.Faker, rng *rand.Rand, userIDs []int64) {
	for _, likerID := range userIDs {
		count := 5 + rng.Intn(25)
		for i := 0; i < count; i++ {
			likedID := userIDs[rng.Intn(len(userIDs))]
			if likedID == likerID {
				continue
			}

			result, err := db.Exec(`
				INSERT INTO likes (liker_id, liked_id)
				VALUES ($1, $2)
				ON CONFLICT (liker_id, liked_id) DO NOTHING
			`, likerID, likedID)
			if err != nil {
				log.Fatal("failed to seed like: ", err)
			}
			if affected, _ := result.RowsAffected(); affected == 0 {
				continue
			}

			if _, err := db.Exec(`UPDATE profiles SET popularity = popularity + 1 WHERE id = $1`, likedID); err != nil {
				log.Fatal("failed to bump popularity: ", err)
			}

			var mutual bool
			if err := db.Get(&mutual, `SELECT EXISTS(SELECT 1 FROM likes WHERE liker_id = $1 AND liked_id = $2)`, likedID, likerID); err != nil {
				log.Fatal("failed to check mutual like: ", err)
			}
			if mutual {
				seedConversation(db, fake, rng, likerID, likedID)
			}
		}
	}
}

func seedConversation(db *sqlx.DB, fake faker.Faker, rng *rand.Rand, a, b int64) {
	if a > b {
		a, b = b, a
	}

	var conversationID int64
	err := db.QueryRowx(`
		INSERT INTO conversations (user_a_id, user_b_id)
		VALUES ($1, $2)
		ON CONFLICT (user_a_id, user_b_id) DO UPDATE SET user_a_id = EXCLUDED.user_a_id
		RETURNING id
	`, a, b).Scan(&conversationID)
	if err != nil {
		log.Fatal("failed to seed conversation: ", err)
	}

	participants := []int64{a, b}
	count := 1 + rng.Intn(10)
	for i := 0; i < count; i++ {
		_, err := db.Exec(`
			INSERT INTO messages (conversation_id, sender_id, content)
			VALUES ($1, $2, $3)
		`, conversationID, participants[rng.Intn(2)], fake.Lorem().Sentence(6+rng.Intn(10)))
		if err != nil {
			log.Fatal("failed to seed message: ", err)
		}
	}
}

func makeUsername(firstname, lastname string, rng *rand.Rand) string {
	base := strings.ToLower(firstname)
	if len(base) > 3 {
		base = base[:3]
	}
	last := strings.ToLower(lastname)
	if len(last) > 3 {
		last = last[:3]
	}
	return fmt.Sprintf("%s%s%d", base, last, rng.Intn(10000))
}
