package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hoteldesk-backend/models"
	"hoteldesk-backend/utils"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("MYSQL_USER", "root")
	pass := envOrDefault("MYSQL_PASSWORD", "")
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	dbName := envOrDefault("MYSQL_DATABASE", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// probeTables answers false as soon as one expected table is missing
// (MySQL 1146). Any other probe error is fatal for the caller.
func probeTables(db *gorm.DB) (bool, error) {
	tables := []string{
		"roles", "users", "room_types", "rooms", "hotels", "bookings",
		"guests", "customers", "reservations", "reservation_rooms",
		"checkins", "services", "service_orders", "invoices", "payments",
		"housekeeping", "audit_logs",
	}
	for _, table := range tables {
		err := db.Exec("SELECT 1 FROM " + table + " LIMIT 1").Error
		if err != nil {
			if utils.IsNoSuchTable(err) {
				return false, nil
			}
			return false, err
		}
	}
	return true, nil
}

func migrate(db *gorm.DB) error {
	// Parent tables first so FK constraints resolve.
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.RoomType{},
		&models.Room{},
		&models.Hotel{},
		&models.Booking{},
		&models.Guest{},
		&models.Customer{},
		&models.Reservation{},
		&models.ReservationRoom{},
		&models.Checkin{},
		&models.Service{},
		&models.ServiceOrder{},
		&models.Invoice{},
		&models.Payment{},
		&models.Housekeeping{},
		&models.AuditLog{},
	)
}

func strPtr(s string) *string { return &s }

func amenities(items ...string) []string { return items }

// SeedDatabase fills an empty rooms table with the sample inventory the
// frontends expect on a fresh install. Duplicate and missing-FK errors
// are logged and skipped so re-running a partial seed converges.
func SeedDatabase(db *gorm.DB) {
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		log.Println("Database already seeded")
		return
	}

	warn := func(what string, err error) {
		if err == nil {
			return
		}
		if utils.IsDuplicateEntry(err) || utils.IsMissingReference(err) || utils.IsDuplicateKeyName(err) {
			log.Printf("warning: seed %s skipped: %v", what, err)
			return
		}
		log.Fatalf("seed %s failed: %v", what, err)
	}

	roles := []models.Role{{Name: "admin"}, {Name: "manager"}, {Name: "receptionist"}, {Name: "housekeeper"}}
	for i := range roles {
		warn("role", db.Create(&roles[i]).Error)
	}

	roomTypes := []models.RoomType{
		{TypeName: "Standard", Description: strPtr("Standard room"), Price: 80, MaxPerson: 2},
		{TypeName: "Deluxe", Description: strPtr("Deluxe room"), Price: 120, MaxPerson: 3},
		{TypeName: "Suite", Description: strPtr("Suite"), Price: 200, MaxPerson: 4},
	}
	for i := range roomTypes {
		warn("room type", db.Create(&roomTypes[i]).Error)
	}

	rooms := []struct {
		name      string
		price     float64
		capacity  int
		amenities []string
	}{
		{"Deluxe Suite", 150, 2, amenities("WiFi", "TV", "Mini Bar")},
		{"Standard Room", 80, 2, amenities("WiFi", "TV")},
		{"Family Room", 120, 4, amenities("WiFi", "TV", "Kitchenette")},
		{"Penthouse", 300, 2, amenities("WiFi", "TV", "Jacuzzi", "Balcony")},
		{"Economy Room", 60, 1, amenities("WiFi")},
	}
	for _, r := range rooms {
		room := models.Room{
			Name:      r.name,
			Price:     r.price,
			Capacity:  r.capacity,
			Amenities: models.EncodeAmenityList(r.amenities),
			Available: true,
		}
		warn("room", db.Create(&room).Error)
	}

	catalog := []models.Service{
		{ServiceName: "Laundry", Price: 15, Status: true},
		{ServiceName: "Breakfast", Price: 12, Status: true},
		{ServiceName: "Airport Shuttle", Price: 40, Status: true},
		{ServiceName: "Spa", Price: 60, Status: true},
	}
	for i := range catalog {
		warn("service", db.Create(&catalog[i]).Error)
	}

	log.Println("Database seeded")
}

// ConnectDatabase opens the pool, ensures the schema exists and seeds a
// fresh database. It must finish before the HTTP listener starts.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	complete, err := probeTables(db)
	if err != nil {
		return err
	}
	if !complete {
		log.Println("Tables missing. Creating schema and seeding...")
	}

	// Migration is additive and always runs, so column additions land on
	// existing installs too.
	if err := migrate(db); err != nil {
		return err
	}

	SeedDatabase(db)

	DB = db
	return nil
}
