package rowstoretest

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/RichardKnop/rowstore/internal/pkg/rowstore"
)

type DataGen struct {
	*gofakeit.Faker
}

func NewDataGen(seed int64) *DataGen {
	g := DataGen{
		Faker: gofakeit.New(seed),
	}

	return &g
}

func (g *DataGen) Row() rowstore.Row {
	aRow, err := rowstore.NewRow(g.Uint32(), g.Username(), g.Email())
	if err != nil {
		// generated usernames and emails always fit their columns
		panic(err)
	}
	return aRow
}

func (g *DataGen) Rows(number int) []rowstore.Row {
	rows := make([]rowstore.Row, 0, number)
	for i := 0; i < number; i++ {
		rows = append(rows, g.Row())
	}
	return rows
}
