package itinerary

import "tabi/internal/model"

func japanTrip() model.Trip {
	return model.Trip{
		Name:      "Japan Adventure",
		Tagline:   "8-Day Cultural Journey for 3",
		GroupSize: 3,
		Cities:    []string{"Tokyo", "Osaka", "Kyoto", "Hiroshima"},
	}
}

func japanDays() []model.Day {
	return []model.Day{
		{
			ID:          1,
			Date:        "September 25, 2025",
			Area:        "Tokyo",
			Title:       "Tokyo Arrival & Evening Introduction",
			Description: "Evening arrival and gentle introduction to Tokyo",
			TotalCost:   18000,
			Highlights:  []string{"Arrival Day", "Private Transfer", "Evening Exploration"},
			Accommodation: &model.Accommodation{
				Name:     "Airbnb Apartment",
				Type:     "Apartment",
				Rating:   4.8,
				Price:    66000,
				Features: []string{"WiFi", "Kitchen", "Washing Machine", "3 Beds"},
				Location: "Katsushika District",
				CheckIn:  "After 4:00 PM",
				CheckOut: "Sept 29, Before 11:00 PM",
				Nights:   4,
			},
			Travel: &model.Travel{
				Route:        "Haneda/Narita Airport → Katsushika",
				Method:       "Private Car Transfer",
				Duration:     "60-90 minutes",
				Cost:         "¥15,000 for group",
				Instructions: "Professional driver will meet you at arrivals with name board. Comfortable vehicle for 3 people with luggage.",
			},
			Activities: []model.Activity{
				{
					Time:        "20:00",
					Category:    model.CategoryStart,
					Description: "Flight arrival at Haneda/Narita Airport",
					Location:    "Haneda Airport, Tokyo, Japan",
					Details:     "International flight arrival, collect baggage and go through customs. Look for driver with name board.",
				},
				{
					Time:             "20:30",
					Category:         model.CategoryTransport,
					Description:      "Private car transfer to accommodation",
					Cost:             15000,
					Location:         "Katsushika District, Tokyo, Japan",
					PreviousLocation: "Haneda Airport, Tokyo, Japan",
					Details:          "Professional driver service with comfortable vehicle. Direct transfer to Airbnb apartment.",
				},
				{
					Time:             "21:30",
					Category:         model.CategoryHotel,
					Description:      "Check-in to Airbnb (Katsushika)",
					Location:         "Katsushika District, Tokyo, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "Meet host for key collection. Apartment has 3 beds, kitchen, and washing facilities.",
				},
				{
					Time:             "22:30",
					Category:         model.CategoryFood,
					Description:      "Late dinner at halal restaurant",
					Cost:             3000,
					Location:         "Halal Wagyu One, Asakusa, Tokyo, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "Halal-certified restaurant 15 mins from accommodation. Try halal wagyu and Japanese curry.",
				},
			},
			Tips: []string{
				"Download Google Translate app with camera feature",
				"Halal food apps: Halal Gourmet Japan, HalalTrip",
				"Exchange some cash at airport - many places don't accept cards",
			},
		},
		{
			ID:          2,
			Date:        "September 26, 2025",
			Area:        "Tokyo",
			Title:       "Tokyo Skytree & Modern Culture",
			Description: "Iconic views and youth culture exploration",
			TotalCost:   18500,
			Highlights:  []string{"Tokyo Skytree", "Asakusa", "Modern Tokyo", "Halal Food"},
			Travel: &model.Travel{
				Route:        "Katsushika → Asakusa → Tokyo Skytree → Shibuya",
				Method:       "JR Lines + Tokyo Metro",
				Duration:     "Full day with train travel",
				Cost:         "¥800 per person",
				Instructions: "Use IC card for all train travel. Stay on JR lines when possible with JR Pass.",
			},
			Activities: []model.Activity{
				{
					Time:             "09:00",
					Category:         model.CategoryCulture,
					Description:      "Senso-ji Temple visit",
					Location:         "Senso-ji Temple, Asakusa, Tokyo, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "Tokyo's oldest temple (645 AD). Walk through Nakamise Shopping Street. Respect dress code.",
				},
				{
					Time:             "11:00",
					Category:         model.CategoryAttraction,
					Description:      "Tokyo Skytree observation deck",
					Cost:             3100,
					Location:         "Tokyo Skytree, Sumida, Tokyo, Japan",
					PreviousLocation: "Senso-ji Temple, Asakusa, Tokyo, Japan",
					Details:          "Book timed entry tickets. 350m & 450m observation decks. Clear Mt. Fuji views on sunny days.",
				},
				{
					Time:             "13:00",
					Category:         model.CategoryFood,
					Description:      "Halal lunch at Solamachi",
					Cost:             2500,
					Location:         "Tokyo Skytree Town, Sumida, Tokyo, Japan",
					PreviousLocation: "Tokyo Skytree, Sumida, Tokyo, Japan",
					Details:          "Visit Halal-certified restaurants in Solamachi complex. Try halal ramen or sushi.",
				},
				{
					Time:             "15:00",
					Category:         model.CategoryCulture,
					Description:      "Harajuku fashion district",
					Location:         "Harajuku, Shibuya, Tokyo, Japan",
					PreviousLocation: "Tokyo Skytree Town, Sumida, Tokyo, Japan",
					Details:          "Takeshita Street for youth culture. Omotesando for high fashion. People watching.",
				},
				{
					Time:             "17:00",
					Category:         model.CategoryCulture,
					Description:      "Shibuya Crossing experience",
					Location:         "Shibuya Crossing, Tokyo, Japan",
					PreviousLocation: "Harajuku, Shibuya, Tokyo, Japan",
					Details:          "World's busiest pedestrian crossing. Visit Shibuya Sky observation deck for aerial view.",
				},
				{
					Time:             "19:00",
					Category:         model.CategoryFood,
					Description:      "Halal dinner in Shibuya",
					Cost:             4000,
					Location:         "Shibuya District, Tokyo, Japan",
					PreviousLocation: "Shibuya Crossing, Tokyo, Japan",
					Details:          "Multiple halal options: Nabezo (halal shabu-shabu), Turkish kebabs, Indian restaurants.",
				},
			},
			Tips: []string{
				"Download Tokyo Metro app for navigation",
				"Many temples require modest dress - cover shoulders and knees",
				"Shibuya Sky has great sunset views around 6 PM",
			},
		},
		{
			ID:          3,
			Date:        "September 27, 2025",
			Area:        "Tokyo Disney",
			Title:       "Tokyo Disneyland Magic",
			Description: "Full day magical experience at Tokyo Disneyland",
			TotalCost:   25000,
			Highlights:  []string{"Disney Magic", "Theme Park", "Family Fun", "Special Dietary"},
			Travel: &model.Travel{
				Route:        "Katsushika → Maihama Station",
				Method:       "JR Keiyo Line",
				Duration:     "45 minutes",
				Cost:         "¥350 per person",
				Instructions: "Take JR Keiyo Line direct to Maihama Station. Disney Resort Line monorail to park entrance.",
			},
			Activities: []model.Activity{
				{
					Time:             "07:30",
					Category:         model.CategoryTransport,
					Description:      "Travel to Tokyo Disneyland",
					Cost:             350,
					Location:         "Maihama Station, Chiba, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "JR Keiyo Line to Maihama Station, then Disney Resort Line monorail (¥260) to park.",
				},
				{
					Time:             "08:30",
					Category:         model.CategoryStart,
					Description:      "Park opening & rope drop",
					Location:         "Tokyo Disneyland, Chiba, Japan",
					PreviousLocation: "Maihama Station, Chiba, Japan",
					Details:          "Arrive 30 mins before opening. Use Disney Premier Access for popular rides.",
				},
				{
					Time:             "09:00",
					Category:         model.CategoryAttraction,
					Description:      "Disney attractions tour",
					Cost:             8400,
					Location:         "Tokyo Disneyland, Chiba, Japan",
					PreviousLocation: "Tokyo Disneyland, Chiba, Japan",
					Details:          "Priority: Beauty & Beast, Splash Mountain, Space Mountain. Use Disney app for wait times.",
				},
				{
					Time:             "12:30",
					Category:         model.CategoryFood,
					Description:      "Halal lunch at park",
					Cost:             3500,
					Location:         "Queen of Hearts Banquet Hall, Tokyo Disneyland, Japan",
					PreviousLocation: "Tokyo Disneyland, Chiba, Japan",
					Details:          "Disney offers Muslim-friendly meals on request. Contact Guest Relations for special dietary needs.",
				},
				{
					Time:             "18:00",
					Category:         model.CategoryAttraction,
					Description:      "Electrical Parade & fireworks",
					Location:         "Tokyo Disneyland Main Street, Chiba, Japan",
					PreviousLocation: "Queen of Hearts Banquet Hall, Tokyo Disneyland, Japan",
					Details:          "Best viewing spots: Central Plaza or Main Street. Parade starts at 7 PM, fireworks at 8:30 PM.",
				},
				{
					Time:             "21:00",
					Category:         model.CategoryTransport,
					Description:      "Return to accommodation",
					Location:         "Katsushika District, Tokyo, Japan",
					PreviousLocation: "Tokyo Disneyland Main Street, Chiba, Japan",
					Details:          "Trains run until midnight. Keep IC card handy for quick exit.",
				},
			},
			Tips: []string{
				"TICKETS NOT YET BOOKED - Need to purchase (¥25,200 for 3 people)",
				"Download official Tokyo Disney Resort app",
				"Contact Guest Relations for halal meal options in advance",
				"Park stays open until 10 PM - enjoy night illuminations",
			},
		},
		{
			ID:          4,
			Date:        "September 28, 2025",
			Area:        "Mount Fuji Region",
			Title:       "Mount Fuji Sacred Journey",
			Description: "Sacred mountain photography and traditional villages",
			TotalCost:   75000,
			GroupCost:   true,
			Highlights:  []string{"Mount Fuji", "Private Car", "Photography", "Traditional Culture"},
			Travel: &model.Travel{
				Route:        "Tokyo → Fujiyoshida → Kawaguchi Lake → Tokyo",
				Method:       "Private Car with Driver",
				Duration:     "10-hour tour",
				Cost:         "¥65,000 + ¥10,000 guide/entry fees",
				Instructions: "Professional driver picks up from accommodation. English-speaking guide included.",
			},
			Activities: []model.Activity{
				{
					Time:             "07:00",
					Category:         model.CategoryStart,
					Description:      "Private car pickup",
					Cost:             65000,
					GroupCost:        true,
					Location:         "Katsushika District, Tokyo, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "Professional driver with clean, comfortable vehicle. English-speaking guide included.",
				},
				{
					Time:             "09:30",
					Category:         model.CategoryPhoto,
					Description:      "Chureito Pagoda - Iconic Mt. Fuji shot",
					Location:         "Chureito Pagoda, Fujiyoshida, Yamanashi, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "398 steps to pagoda. Best Mt. Fuji photo spot. Clear morning views. Entry: ¥500/person.",
				},
				{
					Time:             "11:30",
					Category:         model.CategoryCulture,
					Description:      "Oshino Hakkai Village exploration",
					Location:         "Oshino Hakkai, Oshino, Yamanashi, Japan",
					PreviousLocation: "Chureito Pagoda, Fujiyoshida, Yamanashi, Japan",
					Details:          "8 sacred ponds from Mt. Fuji snowmelt. Traditional thatched houses. Try local spring water.",
				},
				{
					Time:             "13:00",
					Category:         model.CategoryFood,
					Description:      "Halal lunch by Lake Kawaguchi",
					Cost:             3000,
					Location:         "Lake Kawaguchi, Fujikawaguchiko, Yamanashi, Japan",
					PreviousLocation: "Oshino Hakkai, Oshino, Yamanashi, Japan",
					Details:          "Restaurant with halal options and lake views. Try Hoto noodles (confirm vegetarian/halal prep).",
				},
				{
					Time:             "15:00",
					Category:         model.CategoryAttraction,
					Description:      "Lake Kawaguchi scenic cruise",
					Cost:             1000,
					Location:         "Lake Kawaguchi, Fujikawaguchiko, Yamanashi, Japan",
					PreviousLocation: "Lake Kawaguchi, Fujikawaguchiko, Yamanashi, Japan",
					Details:          "20-minute boat ride with Mt. Fuji reflections. Best afternoon lighting for photos.",
				},
				{
					Time:             "16:30",
					Category:         model.CategoryCulture,
					Description:      "Mt. Fuji 5th Station visit",
					Location:         "Mount Fuji 5th Station, Yamanashi, Japan",
					PreviousLocation: "Lake Kawaguchi, Fujikawaguchiko, Yamanashi, Japan",
					Details:          "Halfway up Mt. Fuji (2,300m). Souvenir shops, shrine, and mountain views. Bring warm clothes.",
				},
				{
					Time:             "18:30",
					Category:         model.CategoryTransport,
					Description:      "Return journey to Tokyo",
					Location:         "Katsushika District, Tokyo, Japan",
					PreviousLocation: "Mount Fuji 5th Station, Yamanashi, Japan",
					Details:          "2.5-hour drive back. Rest in comfortable vehicle. Traffic may be heavy on weekends.",
				},
			},
			Tips: []string{
				"Weather dependent - Mt. Fuji visible only 40% of days",
				"Bring warm clothes for 5th Station (10°C cooler)",
				"Best photos in early morning with clear skies",
			},
		},
		{
			ID:          5,
			Date:        "September 29, 2025",
			Area:        "Osaka",
			Title:       "Osaka & Universal Studios",
			Description: "Travel to Osaka and magical Universal Studios experience",
			TotalCost:   78000,
			Highlights:  []string{"Travel Day", "Shinkansen", "Universal Studios", "Theme Park"},
			Accommodation: &model.Accommodation{
				Name:     "Hotel in Kita District",
				Type:     "Hotel",
				Rating:   4.6,
				Price:    46000,
				Features: []string{"Halal Breakfast", "WiFi", "Concierge", "Near Station"},
				Location: "Kita, Osaka",
				CheckIn:  "After 3:00 PM",
				CheckOut: "Oct 1, Before 10:00 AM",
				Nights:   2,
			},
			Travel: &model.Travel{
				Route:        "Tokyo → Osaka",
				Method:       "Shinkansen (Bullet Train)",
				Duration:     "3 hours",
				Cost:         "¥13,320 per person",
				Instructions: "JR Pass covers Hikari trains. Reserve seats in advance. Non-smoking cars recommended.",
			},
			Activities: []model.Activity{
				{
					Time:             "10:00",
					Category:         model.CategoryTransport,
					Description:      "Check out from Tokyo Airbnb",
					Location:         "Katsushika District, Tokyo, Japan",
					PreviousLocation: "Katsushika District, Tokyo, Japan",
					Details:          "Pack bags, check apartment condition, return keys to host. Keep luggage manageable.",
					Note:             "Before 11:00 PM checkout deadline",
				},
				{
					Time:             "07:30",
					Category:         model.CategoryTransport,
					Description:      "NOZOMI 11 Shinkansen to Osaka",
					Cost:             42960,
					Location:         "Shin-Osaka Station, Osaka, Japan",
					PreviousLocation: "Tokyo Station, Tokyo, Japan",
					Details:          "NOZOMI 11 departure 7:30 Tokyo, arrival 10:00 Shin-Osaka. Reserved seats: Car 15, Seats 9-A, 9-B, 9-C. Fastest service (2.5 hrs).",
					Note:             "PAID - Reservation #2000",
				},
				{
					Time:             "15:00",
					Category:         model.CategoryHotel,
					Description:      "Hotel check-in in Kita District",
					Location:         "Kita District, Osaka, Japan",
					PreviousLocation: "Shin-Osaka Station, Osaka, Japan",
					Details:          "Modern hotel with halal breakfast options. Store luggage if room not ready.",
					Note:             "After 3:00 PM check-in",
				},
				{
					Time:             "11:30",
					Category:         model.CategoryAttraction,
					Description:      "Universal Studios Japan full day experience",
					Cost:             33000,
					Location:         "Universal Studios Japan, Osaka, Japan",
					PreviousLocation: "Kita District, Osaka, Japan",
					Details:          "World-class theme park with Harry Potter, Nintendo World, and movie-themed attractions. Express passes recommended.",
				},
				{
					Time:             "20:00",
					Category:         model.CategoryFood,
					Description:      "Halal dinner in Dotonbori",
					Cost:             4500,
					Location:         "Dotonbori, Osaka, Japan",
					PreviousLocation: "Universal Studios Japan, Osaka, Japan",
					Details:          "Famous food district with halal options: Ganko Sushi (halal menu), Turkish restaurants.",
				},
			},
			Tips: []string{
				"JR Pass must be exchanged before first use",
				"Universal Studios Express Pass highly recommended to skip lines",
				"Download Universal Studios Japan app for wait times",
				"Harry Potter area and Nintendo World are must-visit attractions",
			},
		},
		{
			ID:          6,
			Date:        "September 30, 2025",
			Area:        "Kyoto",
			Title:       "Kyoto Cultural Immersion",
			Description: "Ancient temples, bamboo groves, and traditional culture",
			TotalCost:   25000,
			Highlights:  []string{"Golden Pavilion", "Bamboo Grove", "Traditional Kyoto", "UNESCO Sites"},
			Travel: &model.Travel{
				Route:        "Osaka-Namba → Kyoto (day trip)",
				Method:       "Kintetsu Limited Express AONIYOSHI",
				Duration:     "1 hour 24 minutes each way",
				Cost:         "¥3,000 for 3 people (one way)",
				Instructions: "Premium Limited Express service from Osaka-Namba to Kyoto. Reserved salon seats with discount. Return via regular trains.",
			},
			Activities: []model.Activity{
				{
					Time:             "09:10",
					Category:         model.CategoryTransport,
					Description:      "Limited Express AONIYOSHI to Kyoto",
					Cost:             3000,
					Location:         "Kyoto Station, Kyoto, Japan",
					PreviousLocation: "Osaka-Namba Station, Osaka, Japan",
					Details:          "Kintetsu Limited Express from Osaka-Namba to Kyoto. Departure 09:10, Arrival 10:34. Premium Salon seats with KEIHANNA AONIYOSHI Discount.",
					Note:             "PAID - Reserved Salon seats",
				},
				{
					Time:             "11:00",
					Category:         model.CategoryCulture,
					Description:      "Kinkaku-ji Golden Pavilion",
					Cost:             400,
					Location:         "Kinkaku-ji Temple, Kyoto, Japan",
					PreviousLocation: "Kyoto Station, Kyoto, Japan",
					Details:          "UNESCO World Heritage site. Gold-leafed pavilion over pond. Best photos from designated spots. Early visit recommended.",
				},
				{
					Time:             "11:30",
					Category:         model.CategoryNature,
					Description:      "Arashiyama Bamboo Grove",
					Location:         "Arashiyama Bamboo Grove, Kyoto, Japan",
					PreviousLocation: "Kinkaku-ji Temple, Kyoto, Japan",
					Details:          "Famous bamboo forest with filtered sunlight. 500m walking path. Very popular - early morning best.",
				},
				{
					Time:             "13:00",
					Category:         model.CategoryFood,
					Description:      "Halal lunch in Kyoto",
					Cost:             3000,
					Location:         "Kyoto City Center, Kyoto, Japan",
					PreviousLocation: "Arashiyama Bamboo Grove, Kyoto, Japan",
					Details:          "Visit Ganko Sushi Kyoto branch (halal certified) or try traditional Buddhist vegetarian cuisine (shojin ryori).",
				},
				{
					Time:             "15:00",
					Category:         model.CategoryCulture,
					Description:      "Fushimi Inari Shrine",
					Location:         "Fushimi Inari Shrine, Kyoto, Japan",
					PreviousLocation: "Kyoto City Center, Kyoto, Japan",
					Details:          "Famous for thousands of orange torii gates up the mountain. 2-hour hike to summit. Stunning photos.",
				},
				{
					Time:             "18:00",
					Category:         model.CategoryCulture,
					Description:      "Gion District evening walk",
					Location:         "Gion District, Kyoto, Japan",
					PreviousLocation: "Fushimi Inari Shrine, Kyoto, Japan",
					Details:          "Historic geisha district. Traditional wooden buildings. Possible geisha spotting around 6-7 PM.",
				},
				{
					Time:             "19:30",
					Category:         model.CategoryTransport,
					Description:      "Return to Osaka",
					Cost:             560,
					Location:         "Kita District, Osaka, Japan",
					PreviousLocation: "Gion District, Kyoto, Japan",
					Details:          "Return train to Osaka. Rest after full day of walking. Trains run until midnight.",
				},
			},
			Tips: []string{
				"Wear comfortable walking shoes - lots of temple steps",
				"Respect photography rules at temples",
				"Kyoto City Bus Day Pass (¥600) saves money for multiple temples",
			},
		},
		{
			ID:          7,
			Date:        "October 1, 2025",
			Area:        "Hiroshima",
			Title:       "Hiroshima Peace & Miyajima",
			Description: "Historical reflection and iconic floating torii",
			TotalCost:   28000,
			Highlights:  []string{"Peace Memorial", "Miyajima Island", "UNESCO Heritage", "Historical"},
			Accommodation: &model.Accommodation{
				Name:     "Royal Park Hotel Hiroshima Riverside",
				Type:     "Hotel",
				Rating:   4.7,
				Price:    23000,
				Features: []string{"Riverside Views", "Halal Options", "Concierge", "Premium Location"},
				Location: "Hiroshima City Center",
				CheckIn:  "After 3:00 PM",
				CheckOut: "Oct 2, 11:00 AM",
				Nights:   1,
			},
			Travel: &model.Travel{
				Route:        "Osaka → Hiroshima → Miyajima",
				Method:       "Shinkansen + Ferry",
				Duration:     "1.5 hours to Hiroshima + 30 min ferry",
				Cost:         "¥10,590 Shinkansen + ¥180 ferry",
				Instructions: "Shinkansen to Hiroshima, then local train and ferry to Miyajima Island.",
			},
			Activities: []model.Activity{
				{
					Time:             "09:00",
					Category:         model.CategoryTransport,
					Description:      "Check out from Osaka hotel",
					Location:         "Kita District, Osaka, Japan",
					PreviousLocation: "Kita District, Osaka, Japan",
					Details:          "Efficient checkout. Store luggage at station if needed. Take all belongings.",
					Note:             "Before 10:00 AM checkout",
				},
				{
					Time:             "10:30",
					Category:         model.CategoryTransport,
					Description:      "Shinkansen to Hiroshima",
					Cost:             10590,
					Location:         "Hiroshima Station, Hiroshima, Japan",
					PreviousLocation: "Shin-Osaka Station, Osaka, Japan",
					Details:          "1.5-hour journey on Sakura or Hikari. Beautiful countryside views. Mount fuji on clear days.",
				},
				{
					Time:             "12:30",
					Category:         model.CategoryCulture,
					Description:      "Peace Memorial Park & Museum",
					Cost:             200,
					Location:         "Hiroshima Peace Memorial Park, Hiroshima, Japan",
					PreviousLocation: "Hiroshima Station, Hiroshima, Japan",
					Details:          "Moving museum about atomic bombing. A-Bomb Dome (UNESCO site). Allow 2-3 hours. Respectful behavior required.",
				},
				{
					Time:             "15:30",
					Category:         model.CategoryHotel,
					Description:      "Hotel check-in",
					Location:         "Royal Park Hotel Hiroshima Riverside, Hiroshima, Japan",
					PreviousLocation: "Hiroshima Peace Memorial Park, Hiroshima, Japan",
					Details:          "Luxury hotel with river views. Halal dining options available. Store luggage and refresh.",
					Note:             "After 3:00 PM check-in",
				},
				{
					Time:             "16:30",
					Category:         model.CategoryTransport,
					Description:      "Ferry to Miyajima Island",
					Cost:             180,
					Location:         "Miyajima Island, Hiroshima, Japan",
					PreviousLocation: "Royal Park Hotel Hiroshima Riverside, Hiroshima, Japan",
					Details:          "Local train to Miyajimaguchi, then 10-minute ferry. Beautiful approach to island.",
				},
				{
					Time:             "17:30",
					Category:         model.CategoryCulture,
					Description:      "Itsukushima Shrine & Floating Torii",
					Cost:             300,
					Location:         "Itsukushima Shrine, Miyajima Island, Japan",
					PreviousLocation: "Miyajima Island, Hiroshima, Japan",
					Details:          "Famous floating torii gate. One of Japan's three scenic views. Best at high tide during sunset.",
				},
				{
					Time:             "19:00",
					Category:         model.CategoryFood,
					Description:      "Island dinner with halal options",
					Cost:             4000,
					Location:         "Miyajima Island, Hiroshima, Japan",
					PreviousLocation: "Itsukushima Shrine, Miyajima Island, Japan",
					Details:          "Local specialties: oysters (if halal), maple leaf tempura. Some restaurants offer halal alternatives.",
				},
			},
			Tips: []string{
				"Peace Memorial Museum is emotionally intense - take time",
				"Check tide times for best torii gate photos",
				"Watch out for friendly deer on Miyajima - don't feed them",
			},
		},
		{
			ID:          8,
			Date:        "October 2, 2025",
			Area:        "Tokyo",
			Title:       "Tokyo Return & Farewell",
			Description: "TeamLab digital art experience and departure",
			TotalCost:   55000,
			Highlights:  []string{"teamLab Planets", "Digital Art", "Tokyo Bay", "Departure"},
			Travel: &model.Travel{
				Route:        "Hiroshima → Tokyo → Airport",
				Method:       "Flight + Private Car",
				Duration:     "1.5-hour flight + airport transfer",
				Cost:         "¥43,375 flight + ¥15,000 transfer",
				Instructions: "Morning flight to Haneda, then teamLab visit, private transfer to airport for departure.",
			},
			Activities: []model.Activity{
				{
					Time:             "08:00",
					Category:         model.CategoryTransport,
					Description:      "Flight to Tokyo Haneda",
					Cost:             43375,
					Location:         "Haneda Airport, Tokyo, Japan",
					PreviousLocation: "Royal Park Hotel Hiroshima Riverside, Hiroshima, Japan",
					Details:          "JAL256 domestic flight (12:10-13:25). Check baggage allowance. Arrive airport 1 hour early.",
					Note:             "Flight JAL256 booked for 3 people",
				},
				{
					Time:             "14:00",
					Category:         model.CategoryAttraction,
					Description:      "teamLab Planets digital art",
					Cost:             3200,
					Location:         "teamLab Planets, Toyosu, Tokyo, Japan",
					PreviousLocation: "Haneda Airport, Tokyo, Japan",
					Details:          "Immersive digital art experience. Wear comfortable clothes (may get wet). Advance booking required. 2-3 hours.",
				},
				{
					Time:             "17:00",
					Category:         model.CategoryFood,
					Description:      "Final halal meal at Tsukiji",
					Cost:             3000,
					Location:         "Tsukiji Outer Market, Tokyo, Japan",
					PreviousLocation: "teamLab Planets, Toyosu, Tokyo, Japan",
					Details:          "Famous fish market area. Some halal sushi options available. Try halal-certified seafood dishes.",
				},
				{
					Time:             "18:30",
					Category:         model.CategorySightseeing,
					Description:      "Tokyo Bay sunset walk",
					Location:         "Tokyo Bay, Tokyo, Japan",
					PreviousLocation: "Tsukiji Outer Market, Tokyo, Japan",
					Details:          "Beautiful bay views with city skyline. Great final photos of Tokyo. Relaxing end to trip.",
				},
				{
					Time:             "20:00",
					Category:         model.CategoryTransport,
					Description:      "Private transfer to airport",
					Cost:             15000,
					GroupCost:        true,
					Location:         "Haneda Airport, Tokyo, Japan",
					PreviousLocation: "Tokyo Bay, Tokyo, Japan",
					Details:          "Comfortable private car for 3 people with luggage. 1-hour journey depending on traffic.",
				},
				{
					Time:             "22:00",
					Category:         model.CategoryDeparture,
					Description:      "International departure preparations",
					Location:         "Haneda Airport, Tokyo, Japan",
					PreviousLocation: "Tokyo Bay, Tokyo, Japan",
					Details:          "Check-in for international flight. Tax-free shopping. Final souvenir purchases.",
				},
			},
			Tips: []string{
				"teamLab tickets sell out quickly - book in advance",
				"Keep receipts for tax-free shopping at airport",
				"Allow extra time for airport procedures",
			},
		},
	}
}

func japanRoutes() []model.RouteLeg {
	return []model.RouteLeg{
		{Day: "Day 1", From: "International Airport", To: "Tokyo", Method: "Private Car", Duration: "90 min"},
		{Day: "Day 4", From: "Tokyo", To: "Mount Fuji", Method: "Private Car", Duration: "2.5 hours"},
		{Day: "Day 5", From: "Tokyo", To: "Osaka", Method: "Shinkansen", Duration: "3 hours"},
		{Day: "Day 6", From: "Osaka", To: "Kyoto", Method: "Rapid Train", Duration: "45 min"},
		{Day: "Day 7", From: "Osaka", To: "Hiroshima", Method: "Shinkansen", Duration: "1.5 hours"},
		{Day: "Day 8", From: "Hiroshima", To: "Tokyo", Method: "Domestic Flight", Duration: "1.5 hours"},
	}
}

func japanBudget() model.Budget {
	return model.Budget{
		Total:     293875,
		PerPerson: 97958,
		PerDay:    36734,
		Breakdown: []model.BudgetLine{
			{Category: "Transportation", Percentage: 38, Amount: 180000},
			{Category: "Accommodation", Percentage: 28, Amount: 135000},
			{Category: "Attractions & Experiences", Percentage: 22, Amount: 85000},
			{Category: "Food & Dining", Percentage: 10, Amount: 55000},
			{Category: "Miscellaneous", Percentage: 2, Amount: 18875},
		},
		Paid: []model.PaymentItem{
			{Name: "Tokyo Accommodation (Airbnb)", Amount: 66000, Status: "Paid"},
			{Name: "Osaka Hotel (2 nights)", Amount: 46000, Status: "Paid"},
			{Name: "Hiroshima Hotel (1 night)", Amount: 23000, Status: "Paid"},
			{Name: "Shinkansen NOZOMI 11 (Tokyo-Osaka)", Amount: 42960, Status: "Paid - Reservation #2000"},
			{Name: "Domestic Flight (Hiroshima-Tokyo)", Amount: 43375, Status: "Paid"},
			{Name: "Mount Fuji Private Tour", Amount: 75000, Status: "Paid"},
			{Name: "Universal Studios Japan Studio Pass", Amount: 33000, Status: "Paid - Sept 29, 2025"},
			{Name: "Limited Express AONIYOSHI (Osaka-Kyoto)", Amount: 3000, Status: "Paid - Sept 30, 2025"},
			{Name: "Private Car Transfer (Airport-Tokyo)", Amount: 16000, Status: "Paid - Sept 25, 2025"},
		},
		Unpaid: []model.PaymentItem{
			{Name: "Tokyo Disneyland Tickets", Amount: 25200, Status: "Need to book"},
			{Name: "teamLab Planets Tickets", Amount: 9600, Status: "Need to book"},
			{Name: "Additional Transportation", Amount: 8034, Status: "Pay on arrival"},
		},
		PaidTotal:      323001,
		UnpaidTotal:    23834,
		PaidPercentage: 91,
	}
}
