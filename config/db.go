package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-backend/models"
)

var DB *gorm.DB

// ConnectDatabase opens the MySQL connection, runs migrations and seeds
// demo data on an empty database. Sets the package-level DB handle.
func ConnectDatabase(cfg DBConfig) error {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.RoomType{},
		&models.SeasonRule{},
		&models.SeasonRuleLog{},
		&models.Transaction{},
	); err != nil {
		return err
	}

	DB = db
	SeedDatabase()
	return nil
}

// SeedDatabase inserts a demo tenant, property and room types when the
// respective tables are empty.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("tenant123"), bcrypt.DefaultCost)
		if err != nil {
			logrus.Warnf("failed to hash seed tenant password: %v", err)
		} else {
			tenant := models.User{
				FullName: "Demo Tenant",
				Email:    "tenant@rental.local",
				Password: string(hash),
				IsTenant: true,
			}
			if err := DB.Create(&tenant).Error; err != nil {
				logrus.Warnf("failed to seed tenant: %v", err)
			} else {
				logrus.Info("demo tenant seeded")
			}
		}
	}

	var propCount int64
	DB.Model(&models.Property{}).Count(&propCount)
	if propCount == 0 {
		var tenant models.User
		if err := DB.Where("is_tenant = ?", true).First(&tenant).Error; err != nil {
			logrus.Warnf("no tenant to own seed property: %v", err)
			return
		}

		prop := models.Property{
			TenantID: tenant.ID,
			Name:     "Villa Sejahtera",
			City:     "Yogyakarta",
			Address:  "Jl. Malioboro No. 1",
		}
		if err := DB.Create(&prop).Error; err != nil {
			logrus.Warnf("failed to seed property: %v", err)
			return
		}

		roomTypes := []models.RoomType{
			{PropertyID: prop.ID, Name: "Standard", BasePrice: 350000, Quota: 5, CapacityAdults: 2, CapacityChildren: 1},
			{PropertyID: prop.ID, Name: "Deluxe", BasePrice: 550000, Quota: 3, CapacityAdults: 2, CapacityChildren: 2},
			{PropertyID: prop.ID, Name: "Family Suite", BasePrice: 900000, Quota: 2, CapacityAdults: 4, CapacityChildren: 2},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			logrus.Warnf("failed to seed room types: %v", err)
			return
		}
		logrus.Info("demo property and room types seeded")
	}
}
