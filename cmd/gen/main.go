// Command gen writes gorm/gen typed query helpers for the persistence models.
package main

import (
	"reviewhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LocationModel{},
		model.PlatformCredentialModel{},
		model.ReviewModel{},
		model.ReviewResponseModel{},
		model.ListingModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
