package eligibility

// PickerOption is a selectable picker entry.
type PickerOption struct {
	Label string
	Value string
}

// OtherRegion is offered by the region picker but never covered.
const OtherRegion = "Outros"

// PlanOptions lists the plan picker entries in display order.
func PlanOptions() []PickerOption {
	return []PickerOption{
		{Label: "Básico", Value: string(PlanBasic)},
		{Label: "Essencial", Value: string(PlanEssential)},
		{Label: "Premium", Value: string(PlanPremium)},
	}
}

// RegionOptions lists the region picker entries: a placeholder, every covered
// region, then "Outros".
func RegionOptions() []PickerOption {
	opts := []PickerOption{{Label: "Selecione um estado", Value: ""}}
	for _, region := range coverageRegions {
		opts = append(opts, PickerOption{Label: region, Value: region})
	}
	return append(opts, PickerOption{Label: OtherRegion, Value: OtherRegion})
}
