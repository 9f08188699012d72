package catalog

import "github.com/m04kA/SMC-BikeService/internal/domain"

// Default returns the built-in catalog used when no catalog file is configured.
func Default() *Catalog {
	return &Catalog{
		Services: []Service{
			{ID: "1", Name: "General Service", Description: "Complete bike checkup and maintenance"},
			{ID: "2", Name: "Custom Service", Description: "Tailored service for your specific needs"},
			{ID: "3", Name: "Bike Custom", Description: "Customization and modifications"},
			{ID: "4", Name: "Batteries", Description: "Battery check and replacement"},
			{ID: "5", Name: "Engine Works", Description: "Engine repair and tuning"},
			{ID: "6", Name: "Spare Parts", Description: "Genuine spare parts installation"},
			{ID: "7", Name: "Maintenance", Description: "Regular maintenance service"},
			{ID: "8", Name: "Foam Wash", Description: "Deep cleaning and foam wash"},
			{ID: "9", Name: "Tyre & Wheel", Description: "Tyre replacement and wheel alignment"},
			{ID: "10", Name: "Mileage Tuning", Description: "Improve fuel efficiency"},
			{ID: "11", Name: "Electrical Check", Description: "Complete electrical system check"},
			{ID: "12", Name: "Oil Change", Description: "Engine oil change and filter replacement"},
		},
		Showrooms: []Showroom{
			{ID: "1", Name: "Main Service Center", Address: "Mumbai Naka", Contact: "1800-001"},
			{ID: "2", Name: "Westside Workshop", Address: "Meri-Mhasrul", Contact: "1800-002"},
			{ID: "3", Name: "Eastside Garage", Address: "Adgaon", Contact: "1800-003"},
			{ID: "4", Name: "Central Workshop", Address: "Mahatma Nagar", Contact: "1800-004"},
		},
		Mechanics: map[string][]Mechanic{
			"1": {
				{ID: "1", Name: "Ravi Kumar", Specialization: "Engine Specialist"},
				{ID: "2", Name: "Suresh Patel", Specialization: "General Service"},
			},
			"2": {
				{ID: "3", Name: "Amit Singh", Specialization: "General Service"},
				{ID: "4", Name: "Anil Mehta", Specialization: "Customization"},
			},
			"3": {
				{ID: "5", Name: "Deepak Rao", Specialization: "Engine Specialist"},
				{ID: "6", Name: "Priya Sharma", Specialization: "General Service"},
			},
			"4": {
				{ID: "7", Name: "Akash Gupta", Specialization: "Tyre & Wheel"},
				{ID: "8", Name: "Ashish Reddy", Specialization: "General Service"},
			},
		},
		TimeSlots: append([]string(nil), domain.DefaultTimeSlots...),
	}
}
