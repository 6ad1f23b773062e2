package main

import (
	"courtside/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.RegistrationModel{},
		model.ChannelAddressModel{},
		model.PreferenceModel{},
		model.IntentRecordModel{},
		model.DeliveryRecordModel{},
		model.LedgerEntryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
