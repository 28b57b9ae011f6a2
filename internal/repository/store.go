package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yakoovad/orgstructure/internal/model"
)

// Domain groups the tables one functional area (sales, marketing, service)
// keeps. They share a shape and differ by table prefix.
type Domain[C, O, T, P, Pair any] struct {
	Channels  Repository[C]
	Offices   Repository[O]
	Teams     Repository[T]
	Persons   Repository[P]
	Managers  Repository[model.TeamManager]
	Employees Repository[model.TeamEmployee]
	Pairs     Repository[Pair]
}

func codeTable(name string) Table {
	return Table{Name: name, Key: name + "_code"}
}

func idTable(name string) Table {
	return Table{Name: name, Key: "id"}
}

func newDomain[C, O, T, P, Pair any](pool *pgxpool.Pool, prefix string) Domain[C, O, T, P, Pair] {
	return Domain[C, O, T, P, Pair]{
		Channels:  NewPgxRepository[C](pool, codeTable(prefix+"_channel")),
		Offices:   NewPgxRepository[O](pool, codeTable(prefix+"_office")),
		Teams:     NewPgxRepository[T](pool, codeTable(prefix+"_team")),
		Persons:   NewPgxRepository[P](pool, codeTable(prefix+"_person")),
		Managers:  NewPgxRepository[model.TeamManager](pool, idTable(prefix+"_team_manager")),
		Employees: NewPgxRepository[model.TeamEmployee](pool, idTable(prefix+"_team_employee")),
		Pairs:     NewPgxRepository[Pair](pool, idTable(prefix+"_office_team_person_pair")),
	}
}

type (
	SalesDomain     = Domain[model.SalesChannel, model.SalesOffice, model.SalesTeam, model.SalesPerson, model.SalesOfficeTeamPersonPair]
	MarketingDomain = Domain[model.MarketingChannel, model.MarketingOffice, model.MarketingTeam, model.MarketingPerson, model.MarketingOfficeTeamPersonPair]
	ServiceDomain   = Domain[model.ServiceChannel, model.ServiceOffice, model.ServiceTeam, model.ServicePerson, model.ServiceOfficeTeamPersonPair]
)

// Store holds a repository per table.
type Store struct {
	BusinessEntities       Repository[model.BusinessEntity]
	BusinessUnits          Repository[model.BusinessUnit]
	FactoryUnits           Repository[model.FactoryUnit]
	EntityUnitPairs        Repository[model.BusinessEntityUnitPair]
	UnitChannelOfficePairs Repository[model.BusinessUnitChannelOfficePair]
	Sales                  SalesDomain
	Marketing              MarketingDomain
	Service                ServiceDomain
	SavedViews             Repository[model.SavedView]
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		BusinessEntities:       NewPgxRepository[model.BusinessEntity](pool, codeTable("business_entity")),
		BusinessUnits:          NewPgxRepository[model.BusinessUnit](pool, codeTable("business_unit")),
		FactoryUnits:           NewPgxRepository[model.FactoryUnit](pool, codeTable("factory_unit")),
		EntityUnitPairs:        NewPgxRepository[model.BusinessEntityUnitPair](pool, idTable("business_entity_unit_pair")),
		UnitChannelOfficePairs: NewPgxRepository[model.BusinessUnitChannelOfficePair](pool, idTable("business_unit_channel_office_pair")),
		Sales:                  newDomain[model.SalesChannel, model.SalesOffice, model.SalesTeam, model.SalesPerson, model.SalesOfficeTeamPersonPair](pool, "sales"),
		Marketing:              newDomain[model.MarketingChannel, model.MarketingOffice, model.MarketingTeam, model.MarketingPerson, model.MarketingOfficeTeamPersonPair](pool, "marketing"),
		Service:                newDomain[model.ServiceChannel, model.ServiceOffice, model.ServiceTeam, model.ServicePerson, model.ServiceOfficeTeamPersonPair](pool, "service"),
		SavedViews:             NewPgxRepository[model.SavedView](pool, idTable("saved_view")),
	}
}
