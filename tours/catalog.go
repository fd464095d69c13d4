package tours

import "locallens/models"

// The tour catalog is static, read-only content. Order here is display order.
var catalog = []models.TourPackage{
	{
		ID:           "cultural-kathmandu",
		Name:         "Cultural Kathmandu",
		Duration:     "3–4 days",
		Days:         4,
		Difficulty:   "Easy",
		Price:        "$600–900 per person",
		BasePrice:    600,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 09:00 AM",
		SpecialNotes: "Comfortable walking shoes required. Best season: Oct–Nov, Feb–Apr.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Arrival & Kathmandu Valley Overview",
				Description: "Airport pickup and hotel check-in. Evening walk through Thamel, orientation dinner with Jivan.",
				Meals:       []string{"Dinner"},
				Activities:  []string{"Airport Transfer", "Thamel Orientation Walk"},
			},
			{
				Title:       "Pashupatinath & Boudhanath",
				Description: "Morning visit to Pashupatinath Temple – the sacred Hindu temple on the banks of Bagmati. After lunch, explore Boudhanath Stupa, the largest stupa in Nepal. Evening free.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"Pashupatinath Temple", "Boudhanath Stupa", "Local Street Food"},
				Notes:       []string{"Bring Hindu temple dress code – shoulders and knees covered"},
			},
			{
				Title:       "Kathmandu Durbar Square & Swayambhunath",
				Description: "Morning at Kathmandu Durbar Square – ancient royal palace and Kumari Ghar. Afternoon hike up to Swayambhunath Monkey Temple for panoramic views. Cultural show in the evening.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Durbar Square", "Swayambhunath Stupa", "Cultural Performance"},
				Notes:       []string{"Wear comfortable walking shoes – some stairs involved"},
			},
			{
				Title:       "Patan & Departure",
				Description: "Morning visit to Patan Durbar Square and its world-class museum. Final lunch together, airport drop-off.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"Patan Museum", "Patan Durbar Square", "Airport Transfer"},
			},
		},
	},
	{
		ID:           "pokhara-nagarkot",
		Name:         "Pokhara & Nagarkot",
		Duration:     "5–7 days",
		Days:         6,
		Difficulty:   "Easy–Moderate",
		Price:        "$900–1,500 per person",
		BasePrice:    900,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 09:00 AM",
		SpecialNotes: "Light trekking shoes recommended. Internal flights may vary – Jivan handles changes.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Arrival Kathmandu",
				Description: "Airport pickup, hotel check-in. Evening stroll in Thamel. Welcome dinner.",
				Meals:       []string{"Dinner"},
				Activities:  []string{"Airport Transfer", "Thamel Walk"},
			},
			{
				Title:       "Kathmandu → Nagarkot Sunset",
				Description: "Drive to Nagarkot (1.5 hrs) with scenic stops. Arrive before sunset for stunning Himalayan panorama including Everest range on clear days.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Nagarkot Viewpoint", "Himalayan Sunset"},
				Notes:       []string{"Bring warm layer – Nagarkot is cooler at 2100m"},
			},
			{
				Title:       "Nagarkot Sunrise → Bhaktapur",
				Description: "Early sunrise watch (5:30 AM). After breakfast, visit ancient Bhaktapur Durbar Square – UNESCO World Heritage Site. Lunch in Bhaktapur's old town.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"Nagarkot Sunrise", "Bhaktapur Durbar Square", "Newari Cuisine"},
				Notes:       []string{"Wake up call at 5:00 AM for sunrise"},
			},
			{
				Title:       "Flight to Pokhara",
				Description: "Morning flight to Pokhara (30 min, views of Annapurna). Afternoon boating on Phewa Lake with views of Machhapuchhre (Fish Tail Mountain).",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Mountain Flight", "Phewa Lake Boating", "Pokhara City Walk"},
				Notes:       []string{"Jivan handles all flight logistics and backup plans"},
			},
			{
				Title:       "Pokhara – Sarangkot Sunrise & Paragliding",
				Description: "Pre-dawn drive to Sarangkot for Annapurna sunrise. Option to paraglide over Pokhara Valley. Afternoon visit World Peace Pagoda.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Sarangkot Sunrise", "Optional Paragliding", "World Peace Pagoda"},
				Notes:       []string{"Paragliding is optional – $90 extra"},
			},
			{
				Title:       "Free Day in Pokhara & Departure",
				Description: "Morning free for shopping or relaxation. Afternoon flight back to Kathmandu. Airport drop-off.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Lakeside Shopping", "Return Flight", "Airport Transfer"},
			},
		},
	},
	{
		ID:           "classic-nepal",
		Name:         "Classic Nepal",
		Duration:     "10–12 days",
		Days:         10,
		Difficulty:   "Easy–Moderate",
		Price:        "$1,500–2,500 per person",
		BasePrice:    1500,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 09:00 AM",
		SpecialNotes: "The complete Nepal experience. Great for first-time visitors.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Arrival Kathmandu",
				Description: "Airport pickup, orientation, welcome dinner.",
				Meals:       []string{"Dinner"},
				Activities:  []string{"Airport Transfer", "Thamel Walk"},
			},
			{
				Title:       "Kathmandu Heritage",
				Description: "Pashupatinath, Boudhanath, Swayambhunath temples.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"Temple Tour", "Street Food"},
			},
			{
				Title:       "Patan & Bhaktapur",
				Description: "Two UNESCO World Heritage Cities in one day. Patan museum and Bhaktapur Durbar Square.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Patan Museum", "Bhaktapur Old Town"},
			},
			{
				Title:       "Fly to Pokhara",
				Description: "Morning mountain flight (30 min) with Himalayan views. Settle in Pokhara.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Mountain Flight", "Phewa Lake"},
			},
			{
				Title:       "Pokhara Exploration",
				Description: "Sarangkot sunrise, Annapurna views, optional paragliding, World Peace Pagoda.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Sarangkot Sunrise", "Pagoda Visit"},
			},
			{
				Title:       "Pokhara Free Day",
				Description: "Boating, kayaking, zip-lining, or relaxation at lakeside.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Leisure Activities"},
			},
			{
				Title:       "Fly to Bharatpur → Chitwan",
				Description: "Morning flight to Chitwan. Jungle walk, bird watching, tharu cultural program.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Jungle Walk", "Bird Watching", "Tharu Culture"},
			},
			{
				Title:       "Chitwan Jungle Safari",
				Description: "Full day safari – jeep drive, elephant breeding center, canoe ride on Rapti River.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Jeep Safari", "Canoe Ride", "Elephant Center"},
				Notes:       []string{"Chance to see rhinos and crocodiles"},
			},
			{
				Title:       "Chitwan → Kathmandu",
				Description: "Morning drive or flight back to Kathmandu. Free afternoon.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Return Transfer"},
			},
			{
				Title:       "Souvenir Shopping & Departure",
				Description: "Morning shopping at Thamel and Indra Chowk. Airport drop-off.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Thamel Shopping", "Airport Transfer"},
			},
		},
	},
	{
		ID:           "poon-hill",
		Name:         "Poon Hill Trek",
		Duration:     "7–9 days",
		Days:         8,
		Difficulty:   "Moderate",
		Price:        "$800–1,200 per person",
		BasePrice:    800,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 08:00 AM",
		SpecialNotes: "First Himalayan trek – ideal for beginners. Trekking poles available on request.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Arrival Kathmandu",
				Description: "Airport pickup, gear check, briefing dinner.",
				Meals:       []string{"Dinner"},
				Activities:  []string{"Airport Transfer", "Gear Briefing"},
				Notes:       []string{"Bring proper trekking boots"},
			},
			{
				Title:       "Drive Kathmandu → Nayapul → Tikhedhunga",
				Description: "6-hour drive to Nayapul (the trek trailhead), then 3-hour walk to Tikhedhunga (1,540m).",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Scenic Drive", "Trek Start", "Teahouse"},
			},
			{
				Title:       "Tikhedhunga → Ghorepani",
				Description: "Trek through Ulleri (stone steps!) and Banthanti to Ghorepani (2,874m). Stunning rhododendron forests.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Forest Trek", "Rhododendron Trail"},
			},
			{
				Title:       "Poon Hill Sunrise (3,210m)",
				Description: "Pre-dawn hike to Poon Hill viewpoint (1.5 hrs). 360° panorama of Annapurna, Dhaulagiri, Machhapuchhre. Return to Ghorepani for breakfast.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Poon Hill Sunrise", "Himalayan Panorama"},
				Notes:       []string{"Wake up at 4:30 AM – worth every minute!"},
			},
			{
				Title:       "Ghorepani → Tadapani",
				Description: "Trek through forests to Tadapani. Alternative: trek down to Chomrong for harder route.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Forest Trek", "Gurung Villages"},
			},
			{
				Title:       "Tadapani → Ghandruk",
				Description: "Descend to Ghandruk – a beautiful Gurung village with Annapurna South views. Cultural evening.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Gurung Village", "Cultural Experience"},
			},
			{
				Title:       "Ghandruk → Nayapul → Pokhara",
				Description: "Morning trek down to Nayapul, drive to Pokhara. Rest evening at lakeside.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Trek End", "Pokhara Lakeside"},
			},
			{
				Title:       "Return to Kathmandu / Departure",
				Description: "Flight or drive to Kathmandu. Airport drop-off.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Return Transfer", "Airport Drop-off"},
			},
		},
	},
	{
		ID:           "honey-hunting",
		Name:         "Honey Hunting Expedition",
		Duration:     "5–7 days",
		Days:         6,
		Difficulty:   "Moderate",
		Price:        "$1,200–2,000 per person",
		BasePrice:    1200,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 07:00 AM (early start required)",
		SpecialNotes: "ONLY 6 SPOTS PER YEAR. Season: April–May and October–November. Smoking strictly prohibited on expedition.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Kathmandu → Pokhara → Ghanpokhara",
				Description: "Fly to Pokhara, drive to the remote Gurung village of Ghanpokhara. Meet the traditional honey hunters.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Mountain Flight", "Village Arrival", "Hunter Meeting"},
				Notes:       []string{"Bring insect repellent and long sleeves"},
			},
			{
				Title:       "Cliff Preparation & Ritual",
				Description: "Morning ritual prayer to the cliff gods by the lead hunter. Rope preparation, traditional equipment. Walk to the cliff site (3–4 hrs).",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Traditional Ritual", "Cliff Scouting", "Equipment Prep"},
				Notes:       []string{"Be respectful and silent during the ritual"},
			},
			{
				Title:       "The Honey Hunt",
				Description: "THE DAY. Watch Gurung hunters descend 100m cliff faces on hand-woven ropes to harvest wild Himalayan cliff honey from the world's largest honeybees.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Honey Harvest", "Photography", "Cultural Immersion"},
				Notes:       []string{"Stand-back distance maintained – you are completely safe", "Video and photography allowed"},
			},
			{
				Title:       "Village Life & Local Ceremony",
				Description: "Spend the day learning Gurung culture, cooking local food, tasting fresh wild honey. Evening celebration with village elders.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Village Homestay", "Honey Tasting", "Cultural Ceremony"},
			},
			{
				Title:       "Return to Pokhara",
				Description: "Scenic drive back to Pokhara. Debrief dinner and certificate ceremony.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Scenic Drive", "Certificate Ceremony"},
			},
			{
				Title:       "Pokhara → Kathmandu / Departure",
				Description: "Morning flight back to Kathmandu. Airport drop-off with honey jar gift.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Return Flight", "Departure Gift"},
			},
		},
	},
	{
		ID:           "muktinath",
		Name:         "Muktinath Pilgrimage",
		Duration:     "10–12 days",
		Days:         9,
		Difficulty:   "Moderate",
		Price:        "$1,200–1,800 per person",
		BasePrice:    1200,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 07:00 AM",
		SpecialNotes: "Sacred site for Hindus and Buddhists. High altitude (3,800m) – some acclimatization needed.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Arrival & Kathmandu",
				Description: "Airport pickup, Pashupatinath visit (spiritual preparation), briefing dinner.",
				Meals:       []string{"Dinner"},
				Activities:  []string{"Airport Transfer", "Pashupatinath"},
			},
			{
				Title:       "Fly Kathmandu → Pokhara",
				Description: "Morning flight, Pokhara sightseeing – Phewa Lake and Bindhyabasini Temple.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Mountain Flight", "Temple Visit"},
			},
			{
				Title:       "Fly Pokhara → Jomsom",
				Description: "Stunning 20-minute mountain flight to Jomsom (2,720m) in the Mustang Valley. Desert landscape, Tibetan-influenced culture.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Mountain Flight", "Mustang Exploration"},
				Notes:       []string{"Flights operate only in morning – weather dependent"},
			},
			{
				Title:       "Jomsom → Muktinath (3,800m)",
				Description: "Drive or ride to the sacred Muktinath Temple – holy to both Hindus and Buddhists. 108 water spouts, eternal flame.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Muktinath Temple", "Sacred Rituals", "108 Spouts"},
				Notes:       []string{"Bring warm clothing – temperature drops significantly"},
			},
			{
				Title:       "Muktinath Sunrise Puja",
				Description: "Early morning ritual bath in sacred waters. Sunrise puja with local priests. Time for personal prayer and meditation.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"Morning Puja", "Sunrise Prayer", "Sacred Bath"},
				Notes:       []string{"Sacred bath is cold but spiritually powerful"},
			},
			{
				Title:       "Kagbeni & Marpha",
				Description: "Visit medieval walled city of Kagbeni. Afternoon in Marpha – apple orchard village, try local apple brandy.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Kagbeni Exploration", "Marpha Village", "Apple Brandy"},
			},
			{
				Title:       "Return to Jomsom & Flight Back",
				Description: "Morning return to Jomsom airport, flight to Pokhara.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Return Flight", "Pokhara Arrival"},
			},
			{
				Title:       "Pokhara Rest Day",
				Description: "Optional Sarangkot sunrise, Lakeside relaxation, shopping.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Leisure", "Shopping"},
			},
			{
				Title:       "Return to Kathmandu / Departure",
				Description: "Fly back to Kathmandu. Souvenir shopping, airport drop-off.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Return Flight", "Shopping", "Airport Drop-off"},
			},
		},
	},
	{
		ID:           "grand-nepal",
		Name:         "Grand Tour Nepal",
		Duration:     "14–16 days",
		Days:         15,
		Difficulty:   "Moderate",
		Price:        "$2,500–4,000 per person",
		BasePrice:    2500,
		MeetingPoint: "Tribhuvan International Airport (TIA), Kathmandu – 09:00 AM",
		SpecialNotes: "The ultimate Nepal experience covering 5 distinct regions. Ideal for repeat visitors or those wanting everything.",
		DayPlans: []models.DayPlan{
			{
				Title:       "Arrival Kathmandu",
				Description: "Airport pickup, orientation, welcome dinner.",
				Meals:       []string{"Dinner"},
				Activities:  []string{"Airport Transfer"},
			},
			{
				Title:       "Kathmandu Temples",
				Description: "Pashupatinath, Boudhanath, Swayambhunath.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"Temple Circuit"},
			},
			{
				Title:       "Patan & Bhaktapur",
				Description: "Two Heritage Cities, Newari architecture and cuisine.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Heritage Cities"},
			},
			{
				Title:       "Nagarkot Sunrise & Return",
				Description: "Overnight at Nagarkot for Himalayan sunrise.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Nagarkot Sunset", "Sunrise"},
			},
			{
				Title:       "Fly to Pokhara",
				Description: "Morning flight. Phewa Lake boating.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Mountain Flight", "Lake Boating"},
			},
			{
				Title:       "Sarangkot & Pokhara Highlights",
				Description: "Sunrise at Sarangkot, Peace Pagoda, Devi's Fall.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Sarangkot", "Peace Pagoda"},
			},
			{
				Title:       "Fly Pokhara → Jomsom → Muktinath",
				Description: "Morning flight to Jomsom, drive to Muktinath sacred temple.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Mountain Flight", "Muktinath"},
			},
			{
				Title:       "Muktinath Pilgrimage & Mustang",
				Description: "Full day at Muktinath, Kagbeni and Marpha villages.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Pilgrimage", "Mustang Villages"},
			},
			{
				Title:       "Return to Pokhara",
				Description: "Jomsom airport, flight to Pokhara.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Return Flight"},
			},
			{
				Title:       "Drive to Lumbini",
				Description: "Drive to Lumbini (4 hrs) – birthplace of Buddha. Sacred Garden, Maya Devi Temple.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Lumbini Sacred Garden", "Maya Devi Temple"},
			},
			{
				Title:       "Lumbini Exploration",
				Description: "World Peace Pagodas from different countries, meditation gardens.",
				Meals:       []string{"Breakfast", "Lunch"},
				Activities:  []string{"International Monasteries", "Meditation"},
			},
			{
				Title:       "Lumbini → Chitwan",
				Description: "Drive to Chitwan (3 hrs), evening cultural show.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Tharu Cultural Show"},
			},
			{
				Title:       "Chitwan Safari Day",
				Description: "Full day: jeep safari, canoe ride, elephant breeding center.",
				Meals:       []string{"Breakfast", "Lunch", "Dinner"},
				Activities:  []string{"Jeep Safari", "Canoe Ride", "Bird Watching"},
			},
			{
				Title:       "Return to Kathmandu",
				Description: "Drive or fly back to Kathmandu. Shopping, farewell dinner.",
				Meals:       []string{"Breakfast", "Dinner"},
				Activities:  []string{"Return Transfer", "Farewell Dinner"},
			},
			{
				Title:       "Departure",
				Description: "Final breakfast, airport drop-off.",
				Meals:       []string{"Breakfast"},
				Activities:  []string{"Airport Transfer"},
			},
		},
	},
}

// Hotel tiers available on the customizer. The 3-star tier is folded into
// every tour's base price.
var hotelTiers = []models.HotelTier{
	{Stars: 3, PricePerNight: 0, Included: true},
	{Stars: 4, PricePerNight: 40},
	{Stars: 5, PricePerNight: 90},
}

// Vehicle options. The SUV carries a seating-capacity policy; the rest fit
// any supported group size.
var vehicles = []models.VehicleOption{
	{Type: "car", Name: "Car", PricePerDay: 30},
	{Type: "suv", Name: "SUV", PricePerDay: 45, Seats: 4},
	{Type: "jeep", Name: "Jeep", PricePerDay: 60},
	{Type: "hiace", Name: "Hiace", PricePerDay: 80},
}
