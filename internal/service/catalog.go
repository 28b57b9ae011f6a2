package service

import (
	"github.com/yakoovad/orgstructure/internal/db"
	"github.com/yakoovad/orgstructure/internal/model"
	"github.com/yakoovad/orgstructure/internal/repository"
)

// Domain holds the services of one functional area. Channels, offices, teams
// and persons are keyed by code; managers and employees by generated id.
type Domain[C Entity, CP Patch, O Entity, OP Patch, T Entity, TP Patch, S Entity, SP Patch, Pr PairRecord, A model.Assignment] struct {
	Channels  *EntityService[C, CP]
	Offices   *EntityService[O, OP]
	Teams     *EntityService[T, TP]
	Persons   *EntityService[S, SP]
	Managers  *EntityService[model.TeamManager, model.TeamManagerPatch]
	Employees *EntityService[model.TeamEmployee, model.TeamEmployeePatch]
	Pairs     *PairService[Pr, A]
}

type (
	SalesServices = Domain[
		model.SalesChannel, model.SalesChannelPatch,
		model.SalesOffice, model.SalesOfficePatch,
		model.SalesTeam, model.SalesTeamPatch,
		model.SalesPerson, model.SalesPersonPatch,
		model.SalesOfficeTeamPersonPair, model.SalesTeamPersonAssignment,
	]
	MarketingServices = Domain[
		model.MarketingChannel, model.MarketingChannelPatch,
		model.MarketingOffice, model.MarketingOfficePatch,
		model.MarketingTeam, model.MarketingTeamPatch,
		model.MarketingPerson, model.MarketingPersonPatch,
		model.MarketingOfficeTeamPersonPair, model.MarketingTeamPersonAssignment,
	]
	ServiceServices = Domain[
		model.ServiceChannel, model.ServiceChannelPatch,
		model.ServiceOffice, model.ServiceOfficePatch,
		model.ServiceTeam, model.ServiceTeamPatch,
		model.ServicePerson, model.ServicePersonPatch,
		model.ServiceOfficeTeamPersonPair, model.ServiceTeamPersonAssignment,
	]
)

func newDomain[C Entity, CP Patch, O Entity, OP Patch, T Entity, TP Patch, S Entity, SP Patch, Pr PairRecord, A model.Assignment](
	tx db.Transactor,
	v Validator,
	repos repository.Domain[C, O, T, S, Pr],
	title, prefix string,
) Domain[C, CP, O, OP, T, TP, S, SP, Pr, A] {
	team := title + " team"
	return Domain[C, CP, O, OP, T, TP, S, SP, Pr, A]{
		Channels: NewEntityService[C, CP](tx, v, title+" channel").WithRepo(repos.Channels),
		Offices:  NewEntityService[O, OP](tx, v, title+" office").WithRepo(repos.Offices),
		Teams:    NewEntityService[T, TP](tx, v, team).WithRepo(repos.Teams),
		Persons:  NewEntityService[S, SP](tx, v, title+" person").WithRepo(repos.Persons),
		Managers: NewEntityService[model.TeamManager, model.TeamManagerPatch](tx, v, team+" manager").
			WithRepo(repos.Managers).
			WithGeneratedID().
			WithParent(team),
		Employees: NewEntityService[model.TeamEmployee, model.TeamEmployeePatch](tx, v, team+" employee").
			WithRepo(repos.Employees).
			WithGeneratedID().
			WithParent(team),
		Pairs: NewPairService[Pr, A](tx, v, "Team person pair",
			Ref{Column: prefix + "_office_code", Name: title + " office", Table: repos.Offices},
			Ref{Column: prefix + "_team_code", Name: team, Table: repos.Teams},
			Ref{Column: prefix + "_person_code", Name: title + " person", Table: repos.Persons},
		).WithRepo(repos.Pairs),
	}
}

// Catalog is every service the API exposes.
type Catalog struct {
	BusinessEntities       *EntityService[model.BusinessEntity, model.BusinessEntityPatch]
	BusinessUnits          *EntityService[model.BusinessUnit, model.BusinessUnitPatch]
	FactoryUnits           *EntityService[model.FactoryUnit, model.FactoryUnitPatch]
	EntityUnitPairs        *PairService[model.BusinessEntityUnitPair, model.UnitAssignment]
	UnitChannelOfficePairs *PairService[model.BusinessUnitChannelOfficePair, model.ChannelOfficeAssignment]
	Sales                  SalesServices
	Marketing              MarketingServices
	Service                ServiceServices
	SavedViews             *EntityService[model.SavedView, model.SavedViewPatch]
}

func NewCatalog(tx db.Transactor, v Validator, store *repository.Store) *Catalog {
	return &Catalog{
		BusinessEntities: NewEntityService[model.BusinessEntity, model.BusinessEntityPatch](tx, v, "Business entity").
			WithRepo(store.BusinessEntities),
		BusinessUnits: NewEntityService[model.BusinessUnit, model.BusinessUnitPatch](tx, v, "Business unit").
			WithRepo(store.BusinessUnits),
		FactoryUnits: NewEntityService[model.FactoryUnit, model.FactoryUnitPatch](tx, v, "Factory unit").
			WithRepo(store.FactoryUnits),
		EntityUnitPairs: NewPairService[model.BusinessEntityUnitPair, model.UnitAssignment](tx, v, "Unit pair",
			Ref{Column: "business_entity_code", Name: "Business entity", Table: store.BusinessEntities},
			Ref{Column: "business_unit_code", Name: "Business unit", Table: store.BusinessUnits},
			Ref{Column: "factory_unit_code", Name: "Factory unit", Table: store.FactoryUnits},
		).WithRepo(store.EntityUnitPairs),
		UnitChannelOfficePairs: NewPairService[model.BusinessUnitChannelOfficePair, model.ChannelOfficeAssignment](tx, v, "Channel office pair",
			Ref{Column: "business_unit_code", Name: "Business unit", Table: store.BusinessUnits},
			Ref{Column: "sales_channel_code", Name: "Sales channel", Table: store.Sales.Channels},
			Ref{Column: "sales_office_code", Name: "Sales office", Table: store.Sales.Offices},
		).WithRepo(store.UnitChannelOfficePairs),
		Sales: newDomain[
			model.SalesChannel, model.SalesChannelPatch,
			model.SalesOffice, model.SalesOfficePatch,
			model.SalesTeam, model.SalesTeamPatch,
			model.SalesPerson, model.SalesPersonPatch,
			model.SalesOfficeTeamPersonPair, model.SalesTeamPersonAssignment,
		](tx, v, store.Sales, "Sales", "sales"),
		Marketing: newDomain[
			model.MarketingChannel, model.MarketingChannelPatch,
			model.MarketingOffice, model.MarketingOfficePatch,
			model.MarketingTeam, model.MarketingTeamPatch,
			model.MarketingPerson, model.MarketingPersonPatch,
			model.MarketingOfficeTeamPersonPair, model.MarketingTeamPersonAssignment,
		](tx, v, store.Marketing, "Marketing", "marketing"),
		Service: newDomain[
			model.ServiceChannel, model.ServiceChannelPatch,
			model.ServiceOffice, model.ServiceOfficePatch,
			model.ServiceTeam, model.ServiceTeamPatch,
			model.ServicePerson, model.ServicePersonPatch,
			model.ServiceOfficeTeamPersonPair, model.ServiceTeamPersonAssignment,
		](tx, v, store.Service, "Service", "service"),
		SavedViews: NewEntityService[model.SavedView, model.SavedViewPatch](tx, v, "Saved view").
			WithRepo(store.SavedViews).
			WithGeneratedID(),
	}
}
