package repository

import (
	causeRepo "dharmachain/database/repository/cause"
	contentRepo "dharmachain/database/repository/content"
)

// Re-export the ContentRepository interface and constructors.
type ContentRepository = contentRepo.ContentRepository

var (
	NewFirestoreContentRepo = contentRepo.NewFirestoreContentRepo
	NewMongoContentRepo     = contentRepo.NewMongoContentRepo
	NewMemoryContentRepo    = contentRepo.NewMemoryContentRepo
)

// Re-export the CategoryRepository interface and constructors.
type CategoryRepository = causeRepo.CategoryRepository

var (
	NewMongoCategoryRepo  = causeRepo.NewMongoCategoryRepo
	NewMemoryCategoryRepo = causeRepo.NewMemoryCategoryRepo
)
