package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/nyashaushe/loyaltAI/services"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo tenant with an admin, customers, rewards and
// transactions so the dashboard has data to show.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("LOYALTAI - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.LoyaltyGorm.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Transaction{},
		&models.Reward{},
		&models.Program{},
		&models.LoginEvent{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	tenant := seedTenant()
	seedAdmin(tenant)
	customers := seedCustomers(tenant)
	seedProgram(tenant)
	seedRewards(tenant)
	seedTransactions(tenant, customers)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Data Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Tenant: %s (%s)\n", tenant.Name, tenant.Slug)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login as admin@coffeeshop.com / admin123")
	fmt.Println("3. Hit GET /api/v1/admin/analytics?tenantId=<tenant id> with the token")
	fmt.Println()
}

func seedTenant() models.Tenant {
	var tenant models.Tenant
	err := config.LoyaltyGorm.Where("slug = ?", "coffee-shop-1").First(&tenant).Error
	if err == nil {
		log.Printf("✓ Tenant '%s' already exists", tenant.Slug)
		return tenant
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	tenant = models.Tenant{Slug: "coffee-shop-1", Name: "The Corner Coffee Shop"}
	if err := config.LoyaltyGorm.Create(&tenant).Error; err != nil {
		log.Fatalf("Failed to create tenant: %v", err)
	}
	log.Printf("✓ Created tenant '%s'", tenant.Slug)
	return tenant
}

func seedAdmin(tenant models.Tenant) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@coffeeshop.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing models.User
	if err := config.LoyaltyGorm.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("✓ Admin '%s' already exists", email)
		return
	}

	hash, err := services.GetAuthService().HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		TenantID:     tenant.ID,
		Email:        email,
		Name:         "Shop Admin",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		Status:       "active",
	}
	if err := config.LoyaltyGorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("✓ Created admin '%s'", email)
}

func seedCustomers(tenant models.Tenant) []models.User {
	seeds := []struct {
		email string
		name  string
	}{
		{"sarah.johnson@example.com", "Sarah Johnson"},
		{"mike.chen@example.com", "Mike Chen"},
	}

	hash, err := services.GetAuthService().HashPassword("customer123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	customers := make([]models.User, 0, len(seeds))
	for _, s := range seeds {
		var user models.User
		err := config.LoyaltyGorm.Where("email = ?", s.email).First(&user).Error
		if err == nil {
			customers = append(customers, user)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Database error: %v", err)
		}
		user = models.User{
			TenantID:     tenant.ID,
			Email:        s.email,
			Name:         s.name,
			Role:         models.RoleCustomer,
			PasswordHash: hash,
			Status:       "active",
		}
		if err := config.LoyaltyGorm.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create customer '%s': %v", s.email, err)
		}
		customers = append(customers, user)
	}
	log.Printf("✓ Seeded %d customers", len(customers))
	return customers
}

func seedProgram(tenant models.Tenant) {
	var program models.Program
	err := config.LoyaltyGorm.Where("tenant_id = ?", tenant.ID).First(&program).Error
	if err == nil {
		log.Println("✓ Program rules already exist")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	program = models.DefaultProgram(tenant.ID)
	if err := config.LoyaltyGorm.Create(&program).Error; err != nil {
		log.Fatalf("Failed to create program rules: %v", err)
	}
	log.Println("✓ Created default program rules")
}

func seedRewards(tenant models.Tenant) {
	var count int64
	config.LoyaltyGorm.Model(&models.Reward{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	if count > 0 {
		log.Printf("✓ Rewards already exist (%d)", count)
		return
	}

	rewards := []models.Reward{
		{Name: "Free Coffee", Description: "Redeem for any coffee beverage of your choice", PointsCost: 100, Category: "Beverages", IsActive: true, UsageLimit: intPtr(100), UsageCount: 15},
		{Name: "Free Pastry", Description: "Get any pastry or dessert item for free", PointsCost: 150, Category: "Food", IsActive: true, UsageLimit: intPtr(50), UsageCount: 8},
		{Name: "50% Off Any Item", Description: "Get 50% off any menu item", PointsCost: 200, Category: "Discounts", IsActive: true, UsageLimit: intPtr(25), UsageCount: 3},
		{Name: "Free Appetizer", Description: "Redeem for any appetizer or side dish", PointsCost: 120, Category: "Food", IsActive: true, UsageLimit: intPtr(75), UsageCount: 12},
		{Name: "Birthday Special", Description: "Free dessert on your birthday", PointsCost: 50, Category: "Special", IsActive: true, UsageLimit: intPtr(1), UsageCount: 0},
	}
	for i := range rewards {
		rewards[i].TenantID = tenant.ID
		if err := config.LoyaltyGorm.Create(&rewards[i]).Error; err != nil {
			log.Fatalf("Failed to create reward '%s': %v", rewards[i].Name, err)
		}
	}
	log.Printf("✓ Seeded %d rewards", len(rewards))
}

func seedTransactions(tenant models.Tenant, customers []models.User) {
	var count int64
	config.LoyaltyGorm.Model(&models.Transaction{}).Where("tenant_id = ?", tenant.ID).Count(&count)
	if count > 0 {
		log.Printf("✓ Transactions already exist (%d)", count)
		return
	}
	if len(customers) < 2 {
		log.Println("⚠️ Not enough customers to seed transactions")
		return
	}

	now := time.Now()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	transactions := []models.Transaction{
		{UserID: customers[0].ID, Amount: 25.50, PointsEarned: 51, Location: strPtr("Downtown Store"), PaymentMethod: strPtr("Credit Card"), Timestamp: daysAgo(2)},
		{UserID: customers[0].ID, Amount: 18.75, PointsEarned: 37, Location: strPtr("Mall Location"), PaymentMethod: strPtr("Mobile Payment"), Timestamp: daysAgo(5)},
		{UserID: customers[0].ID, Amount: 32.00, PointsEarned: 64, PointsRedeemed: 100, Location: strPtr("Downtown Store"), PaymentMethod: strPtr("Cash"), Timestamp: daysAgo(8)},
		{UserID: customers[1].ID, Amount: 45.25, PointsEarned: 90, Location: strPtr("Airport Location"), PaymentMethod: strPtr("Credit Card"), Timestamp: daysAgo(1)},
		{UserID: customers[1].ID, Amount: 15.50, PointsEarned: 31, Location: strPtr("Downtown Store"), PaymentMethod: strPtr("Mobile Payment"), Timestamp: daysAgo(3)},
		{UserID: customers[1].ID, Amount: 28.75, PointsEarned: 57, PointsRedeemed: 150, Location: strPtr("Mall Location"), PaymentMethod: strPtr("Credit Card"), Timestamp: daysAgo(6)},
		{UserID: customers[0].ID, Amount: 22.00, PointsEarned: 44, Location: strPtr("Downtown Store"), PaymentMethod: strPtr("Credit Card"), Timestamp: daysAgo(15)},
		{UserID: customers[1].ID, Amount: 35.50, PointsEarned: 71, Location: strPtr("Airport Location"), PaymentMethod: strPtr("Credit Card"), Timestamp: daysAgo(12)},
		{UserID: customers[0].ID, Amount: 19.25, PointsEarned: 38, Location: strPtr("Mall Location"), PaymentMethod: strPtr("Mobile Payment"), Timestamp: daysAgo(20)},
		{UserID: customers[1].ID, Amount: 42.75, PointsEarned: 85, Location: strPtr("Downtown Store"), PaymentMethod: strPtr("Credit Card"), Timestamp: daysAgo(25)},
	}
	for i := range transactions {
		transactions[i].TenantID = tenant.ID
		if err := config.LoyaltyGorm.Create(&transactions[i]).Error; err != nil {
			log.Fatalf("Failed to create transaction: %v", err)
		}
	}
	log.Printf("✓ Seeded %d transactions", len(transactions))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
