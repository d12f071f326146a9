package main

import "github.com/poiesic/breedmatch/ingest"

// sampleCatalog seeds a database when no dataset file is given.
var sampleCatalog = []ingest.BreedRecord{
	{Name: "Labrador Retriever", Traits: []string{"high_shedding", "moderate_grooming", "high_energy", "easy_to_train", "friendly", "short_coat", "double_coat", "large_size", "good_with_children", "good_with_other_dogs", "moderate_barking"}},
	{Name: "Golden Retriever", Traits: []string{"high_shedding", "high_grooming", "high_energy", "easy_to_train", "friendly", "long_coat", "double_coat", "large_size", "good_with_children", "good_with_other_dogs", "moderate_barking"}},
	{Name: "Poodle", Traits: []string{"no_shedding", "high_grooming", "high_energy", "easy_to_train", "outgoing", "curly_coat", "medium_size", "good_with_children", "hypoallergenic", "moderate_barking"}},
	{Name: "Miniature Poodle", Traits: []string{"no_shedding", "high_grooming", "moderate_energy", "easy_to_train", "outgoing", "curly_coat", "small_size", "hypoallergenic", "apartment_friendly", "moderate_barking"}},
	{Name: "French Bulldog", Traits: []string{"moderate_shedding", "low_grooming", "low_energy", "agreeable", "outgoing", "smooth_coat", "short_coat", "small_size", "good_with_children", "apartment_friendly", "quiet"}},
	{Name: "Bulldog", Traits: []string{"moderate_shedding", "low_grooming", "low_energy", "stubborn", "friendly", "smooth_coat", "short_coat", "medium_size", "good_with_children", "apartment_friendly", "quiet"}},
	{Name: "Beagle", Traits: []string{"moderate_shedding", "low_grooming", "high_energy", "stubborn", "friendly", "smooth_coat", "short_coat", "small_size", "good_with_children", "good_with_other_dogs", "frequent_barking"}},
	{Name: "German Shepherd", Traits: []string{"high_shedding", "moderate_grooming", "high_energy", "easy_to_train", "alert", "double_coat", "medium_coat", "large_size", "high_protectivity", "moderate_barking"}},
	{Name: "Rottweiler", Traits: []string{"moderate_shedding", "low_grooming", "moderate_energy", "easy_to_train", "reserved", "smooth_coat", "short_coat", "large_size", "high_protectivity", "quiet"}},
	{Name: "Doberman Pinscher", Traits: []string{"moderate_shedding", "low_grooming", "high_energy", "easy_to_train", "alert", "smooth_coat", "short_coat", "large_size", "high_protectivity", "moderate_barking"}},
	{Name: "Siberian Husky", Traits: []string{"high_shedding", "moderate_grooming", "high_energy", "independent", "outgoing", "double_coat", "medium_coat", "medium_size", "good_with_other_dogs", "low_protectivity", "frequent_barking"}},
	{Name: "Basenji", Traits: []string{"low_shedding", "low_grooming", "moderate_energy", "independent", "aloof", "smooth_coat", "short_coat", "small_size", "apartment_friendly", "quiet"}},
	{Name: "Shiba Inu", Traits: []string{"high_shedding", "moderate_grooming", "moderate_energy", "independent", "aloof", "double_coat", "short_coat", "small_size", "apartment_friendly", "quiet"}},
	{Name: "Border Collie", Traits: []string{"moderate_shedding", "moderate_grooming", "high_energy", "easy_to_train", "alert", "double_coat", "medium_coat", "medium_size", "good_with_other_dogs", "moderate_barking"}},
	{Name: "Australian Shepherd", Traits: []string{"moderate_shedding", "moderate_grooming", "high_energy", "easy_to_train", "outgoing", "double_coat", "medium_coat", "medium_size", "good_with_children", "moderate_protectivity", "moderate_barking"}},
	{Name: "Cavalier King Charles Spaniel", Traits: []string{"moderate_shedding", "moderate_grooming", "low_energy", "agreeable", "friendly", "silky_coat", "medium_coat", "toy_size", "good_with_children", "good_with_other_dogs", "apartment_friendly", "quiet"}},
	{Name: "Bichon Frise", Traits: []string{"no_shedding", "high_grooming", "moderate_energy", "easy_to_train", "friendly", "curly_coat", "medium_coat", "toy_size", "good_with_children", "hypoallergenic", "apartment_friendly", "moderate_barking"}},
	{Name: "Maltese", Traits: []string{"no_shedding", "high_grooming", "low_energy", "agreeable", "friendly", "silky_coat", "long_coat", "toy_size", "hypoallergenic", "apartment_friendly", "frequent_barking"}},
	{Name: "Yorkshire Terrier", Traits: []string{"low_shedding", "high_grooming", "moderate_energy", "stubborn", "alert", "silky_coat", "long_coat", "toy_size", "hypoallergenic", "apartment_friendly", "frequent_barking"}},
	{Name: "Shih Tzu", Traits: []string{"low_shedding", "high_grooming", "low_energy", "agreeable", "friendly", "silky_coat", "long_coat", "toy_size", "good_with_children", "apartment_friendly", "quiet"}},
	{Name: "Pug", Traits: []string{"high_shedding", "low_grooming", "low_energy", "agreeable", "outgoing", "smooth_coat", "short_coat", "small_size", "good_with_children", "good_with_other_dogs", "apartment_friendly", "quiet"}},
	{Name: "Chihuahua", Traits: []string{"moderate_shedding", "low_grooming", "moderate_energy", "stubborn", "alert", "smooth_coat", "short_coat", "toy_size", "apartment_friendly", "frequent_barking"}},
	{Name: "Dachshund", Traits: []string{"moderate_shedding", "low_grooming", "moderate_energy", "stubborn", "alert", "smooth_coat", "short_coat", "small_size", "apartment_friendly", "frequent_barking"}},
	{Name: "Boxer", Traits: []string{"moderate_shedding", "low_grooming", "high_energy", "agreeable", "outgoing", "smooth_coat", "short_coat", "large_size", "good_with_children", "moderate_protectivity", "moderate_barking"}},
	{Name: "Great Dane", Traits: []string{"moderate_shedding", "low_grooming", "low_energy", "agreeable", "friendly", "smooth_coat", "short_coat", "giant_size", "good_with_children", "moderate_protectivity", "quiet"}},
	{Name: "Bernese Mountain Dog", Traits: []string{"high_shedding", "high_grooming", "moderate_energy", "easy_to_train", "friendly", "double_coat", "long_coat", "giant_size", "good_with_children", "moderate_protectivity", "quiet"}},
	{Name: "Newfoundland", Traits: []string{"high_shedding", "high_grooming", "low_energy", "agreeable", "friendly", "double_coat", "long_coat", "giant_size", "good_with_children", "good_with_other_dogs", "quiet"}},
	{Name: "Schnauzer", Traits: []string{"low_shedding", "high_grooming", "moderate_energy", "easy_to_train", "alert", "wiry_coat", "medium_coat", "medium_size", "hypoallergenic", "moderate_protectivity", "frequent_barking"}},
	{Name: "West Highland White Terrier", Traits: []string{"low_shedding", "moderate_grooming", "moderate_energy", "independent", "outgoing", "wiry_coat", "medium_coat", "small_size", "hypoallergenic", "apartment_friendly", "frequent_barking"}},
	{Name: "Xoloitzcuintli", Traits: []string{"no_shedding", "low_grooming", "moderate_energy", "independent", "reserved", "hairless", "medium_size", "hypoallergenic", "apartment_friendly", "quiet"}},
	{Name: "Samoyed", Traits: []string{"high_shedding", "high_grooming", "high_energy", "agreeable", "friendly", "double_coat", "long_coat", "medium_size", "good_with_children", "good_with_other_dogs", "frequent_barking"}},
	{Name: "Greyhound", Traits: []string{"low_shedding", "low_grooming", "low_energy", "agreeable", "reserved", "smooth_coat", "short_coat", "large_size", "good_with_other_dogs", "apartment_friendly", "quiet"}},
}
