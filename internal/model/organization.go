package model

type BusinessEntity struct {
	BusinessEntityCode string `json:"businessEntityCode" db:"business_entity_code" validate:"required,code"`
	BusinessEntityName string `json:"businessEntityName" db:"business_entity_name" validate:"required,max=30,alnumspace"`
	Address
	Timestamps
}

func (e BusinessEntity) Fields() map[string]any {
	m := map[string]any{
		"business_entity_code": e.BusinessEntityCode,
		"business_entity_name": e.BusinessEntityName,
	}
	e.Address.putFields(m)
	return m
}

type BusinessEntityPatch struct {
	BusinessEntityCode *string `json:"businessEntityCode" validate:"omitempty,code"`
	BusinessEntityName *string `json:"businessEntityName" validate:"omitempty,max=30,alnumspace"`
	AddressPatch
}

func (p BusinessEntityPatch) NaturalKey() *string { return p.BusinessEntityCode }

func (p BusinessEntityPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "business_entity_name", p.BusinessEntityName)
	p.AddressPatch.putFields(m)
	return m
}

type BusinessUnit struct {
	BusinessUnitCode string `json:"businessUnitCode" db:"business_unit_code" validate:"required,code"`
	BusinessUnitDesc string `json:"businessUnitDesc" db:"business_unit_desc" validate:"required,max=50,alnumspace"`
	Address
	Timestamps
}

func (u BusinessUnit) Fields() map[string]any {
	m := map[string]any{
		"business_unit_code": u.BusinessUnitCode,
		"business_unit_desc": u.BusinessUnitDesc,
	}
	u.Address.putFields(m)
	return m
}

type BusinessUnitPatch struct {
	BusinessUnitCode *string `json:"businessUnitCode" validate:"omitempty,code"`
	BusinessUnitDesc *string `json:"businessUnitDesc" validate:"omitempty,max=50,alnumspace"`
	AddressPatch
}

func (p BusinessUnitPatch) NaturalKey() *string { return p.BusinessUnitCode }

func (p BusinessUnitPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "business_unit_desc", p.BusinessUnitDesc)
	p.AddressPatch.putFields(m)
	return m
}

type FactoryUnit struct {
	FactoryUnitCode string `json:"factoryUnitCode" db:"factory_unit_code" validate:"required,code"`
	FactoryUnitName string `json:"factoryUnitName" db:"factory_unit_name" validate:"required,max=30,alnumspace"`
	Address
	Timestamps
}

func (f FactoryUnit) Fields() map[string]any {
	m := map[string]any{
		"factory_unit_code": f.FactoryUnitCode,
		"factory_unit_name": f.FactoryUnitName,
	}
	f.Address.putFields(m)
	return m
}

type FactoryUnitPatch struct {
	FactoryUnitCode *string `json:"factoryUnitCode" validate:"omitempty,code"`
	FactoryUnitName *string `json:"factoryUnitName" validate:"omitempty,max=30,alnumspace"`
	AddressPatch
}

func (p FactoryUnitPatch) NaturalKey() *string { return p.FactoryUnitCode }

func (p FactoryUnitPatch) Fields() map[string]any {
	m := map[string]any{}
	put(m, "factory_unit_name", p.FactoryUnitName)
	p.AddressPatch.putFields(m)
	return m
}
