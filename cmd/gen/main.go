package main

import (
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BusinessModel{},
		model.BusinessTypeModel{},
		model.BusinessDeviceModel{},
		model.RequestDispatchModel{},
		model.NotificationLogModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
