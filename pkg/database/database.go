package database

import (
	"fmt"
	"log"

	"studytrack_backend/internal/catalog"
	"studytrack_backend/internal/config"
	"studytrack_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.ModuleProgress{},
		&model.UserAchievement{},
		&model.StudySession{},
		&model.CourseModule{},
		&model.CourseCategory{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedCatalog(db)

	return db, nil
}

// seedCatalog mirrors the in-process curriculum tables into reference rows
// so reporting queries can join on them. The in-memory catalog stays the
// source of truth at runtime.
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.CourseModule{}).Count(&count)
	if count == 0 {
		for _, m := range catalog.Modules {
			db.Create(&model.CourseModule{
				ModuleID:    m.ID,
				Title:       m.Title,
				Category:    m.Category,
				Description: m.Description,
			})
		}
	}

	var catCount int64
	db.Model(&model.CourseCategory{}).Count(&catCount)
	if catCount == 0 {
		for _, c := range catalog.Categories {
			db.Create(&model.CourseCategory{
				Name:        c.Name,
				ShortID:     c.ShortID,
				Color:       c.Color,
				ModuleRange: c.ModuleRange,
			})
		}
	}
}
