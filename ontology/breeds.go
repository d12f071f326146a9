package ontology

// Category names of the default dog-trait vocabulary.
const (
	CategoryShedding          = "shedding"
	CategoryGrooming          = "grooming"
	CategoryEnergy            = "energy"
	CategoryTrainability      = "trainability"
	CategoryDemeanor          = "demeanor"
	CategoryCoatType          = "coat_type"
	CategoryCoatLength        = "coat_length"
	CategorySize              = "size"
	CategoryGoodWithChildren  = "good_with_children"
	CategoryGoodWithOtherDogs = "good_with_other_dogs"
	CategoryProtectivity      = "protectivity"
	CategoryBarking           = "barking_level"
)

// DefaultRegistry declares the dog-trait vocabulary.
// Each term doubles as the predicate name a breed's trait list uses.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.RegisterCategory(CategoryShedding,
		"no_shedding", "low_shedding", "moderate_shedding", "high_shedding")
	r.RegisterCategory(CategoryGrooming,
		"low_grooming", "moderate_grooming", "high_grooming")
	r.RegisterCategory(CategoryEnergy,
		"low_energy", "moderate_energy", "high_energy")
	r.RegisterCategory(CategoryTrainability,
		"easy_to_train", "agreeable", "independent", "stubborn")
	r.RegisterCategory(CategoryDemeanor,
		"friendly", "outgoing", "reserved", "aloof", "alert")
	r.RegisterCategory(CategoryCoatType,
		"smooth_coat", "double_coat", "wiry_coat", "curly_coat", "silky_coat", "hairless")
	r.RegisterCategory(CategoryCoatLength,
		"short_coat", "medium_coat", "long_coat")
	r.RegisterCategory(CategorySize,
		"toy_size", "small_size", "medium_size", "large_size", "giant_size")
	r.RegisterCategory(CategoryGoodWithChildren,
		"good_with_children")
	r.RegisterCategory(CategoryGoodWithOtherDogs,
		"good_with_other_dogs")
	r.RegisterCategory(CategoryProtectivity,
		"low_protectivity", "moderate_protectivity", "high_protectivity")
	r.RegisterCategory(CategoryBarking,
		"quiet", "moderate_barking", "frequent_barking")

	r.Register("hypoallergenic", func(v Var) Query { return Apply("hypoallergenic", v) })
	r.Register("apartment_friendly", func(v Var) Query { return Apply("apartment_friendly", v) })

	return r
}
