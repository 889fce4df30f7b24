package pregnancy

// BabySize compares the baby to a familiar object.
type BabySize struct {
	Item  string `json:"item"`
	Emoji string `json:"emoji"`
}

// WeeklyTip is the practical advice shown for one week.
type WeeklyTip struct {
	DadTip         string `json:"dad_tip"`
	PartnerSupport string `json:"partner_support"`
	Preparation    string `json:"preparation"`
}

var babySizes = map[int]BabySize{
	1:  {"Poppy seed", "🌱"},
	2:  {"Sesame seed", "🌱"},
	3:  {"Blueberry", "🫐"},
	4:  {"Kidney bean", "🫘"},
	5:  {"Grape", "🍇"},
	6:  {"Pea", "🌱"},
	7:  {"Blueberry", "🫐"},
	8:  {"Kidney bean", "🫘"},
	9:  {"Grape", "🍇"},
	10: {"Kumquat", "🍊"},
	11: {"Fig", "🥭"},
	12: {"Lime", "🍋"},
	13: {"Lemon", "🍋"},
	14: {"Navel orange", "🍊"},
	15: {"Apple", "🍎"},
	16: {"Avocado", "🥑"},
	17: {"Pomegranate", "🫒"},
	18: {"Bell pepper", "🫑"},
	19: {"Mango", "🥭"},
	20: {"Banana", "🍌"},
	21: {"Carrot", "🥕"},
	22: {"Corn on the cob", "🌽"},
	23: {"Grapefruit", "🍊"},
	24: {"Ear of corn", "🌽"},
	25: {"Cauliflower", "🥦"},
	26: {"Kale", "🥬"},
	27: {"Cauliflower", "🥦"},
	28: {"Eggplant", "🍆"},
	29: {"Butternut squash", "🎃"},
	30: {"Cabbage", "🥬"},
	31: {"Coconut", "🥥"},
	32: {"Squash", "🎃"},
	33: {"Pineapple", "🍍"},
	34: {"Cantaloupe", "🍈"},
	35: {"Honeydew melon", "🍈"},
	36: {"Romaine lettuce", "🥬"},
	37: {"Swiss chard", "🥬"},
	38: {"Pumpkin", "🎃"},
	39: {"Watermelon", "🍉"},
	40: {"Small pumpkin", "🎃"},
}

var unknownSize = BabySize{Item: "Unknown size", Emoji: "👶"}

func BabySizeFor(week int) BabySize {
	if s, ok := babySizes[week]; ok {
		return s
	}
	return unknownSize
}

func DevelopmentFor(week int) string {
	switch {
	case week < 12:
		return "Organs are forming and facial features are developing"
	case week < 20:
		return "Baby can hear sounds and is growing fingernails"
	case week < 30:
		return "Brain and lung development continues rapidly"
	default:
		return "Baby is gaining weight and preparing for birth"
	}
}

func PartnerChangesFor(week int) string {
	switch {
	case week < 12:
		return "Morning sickness and fatigue are common"
	case week < 20:
		return "Energy may return and baby bump becomes visible"
	case week < 30:
		return "Baby movements are noticeable and heartburn may occur"
	default:
		return "Discomfort may increase as baby drops into birth position"
	}
}

// TipFor returns the tip for week, falling back to the closest earlier
// week and finally to week 12.
func TipFor(week int) WeeklyTip {
	for w := week; w >= FirstWeek; w-- {
		if tip, ok := weeklyTips[w]; ok {
			return tip
		}
	}
	return weeklyTips[12]
}

var weeklyTips = map[int]WeeklyTip{
	1: {
		DadTip:         "Take the pregnancy test together and celebrate this moment.",
		PartnerSupport: "Be understanding of mood changes and offer reassurance.",
		Preparation:    "Start researching healthcare providers and prenatal care options.",
	},
	2: {
		DadTip:         "Create a special memory box to collect pregnancy mementos.",
		PartnerSupport: "Hydration is key - help her remember to drink plenty of water.",
		Preparation:    "Begin researching prenatal vitamins and healthy eating habits.",
	},
	3: {
		DadTip:         "Download a pregnancy app to track development milestones.",
		PartnerSupport: "Morning sickness might start now - keep crackers by the bedside.",
		Preparation:    "Schedule the first prenatal appointment together.",
	},
	4: {
		DadTip:         "Take weekly photos to document the pregnancy journey.",
		PartnerSupport: "Offer to take over household chores that might trigger nausea.",
		Preparation:    "Start a pregnancy journal to record your thoughts and experiences.",
	},
	5: {
		DadTip:         "Research childcare costs and options in your area.",
		PartnerSupport: "Fatigue is common - encourage afternoon naps when possible.",
		Preparation:    "Begin discussing parenting philosophies and expectations.",
	},
	6: {
		DadTip:         "Look into company paternity leave policies and plan accordingly.",
		PartnerSupport: "Be patient with food aversions and cravings that may develop.",
		Preparation:    "Research birthing classes in your area and check schedules.",
	},
	7: {
		DadTip:         "Start building a pregnancy music playlist to play for the baby.",
		PartnerSupport: "Heartburn may become an issue - keep antacids handy.",
		Preparation:    "Begin researching pediatricians in your area.",
	},
	8: {
		DadTip:         "Attend the first ultrasound if possible - it's an amazing experience!",
		PartnerSupport: "Morning sickness may be intense now; keep bland snacks available.",
		Preparation:    "Start thinking about how to announce the pregnancy to family and friends.",
	},
	9: {
		DadTip:         "Research cord blood banking options and decisions.",
		PartnerSupport: "Offer gentle back massages to help with discomfort.",
		Preparation:    "Begin discussing baby name possibilities.",
	},
	10: {
		DadTip:         "Look into health insurance updates needed for the baby.",
		PartnerSupport: "Keep healthy snacks readily available for quick energy boosts.",
		Preparation:    "Consider taking a CPR and infant safety course.",
	},
	11: {
		DadTip:         "Research 529 plans or other education savings options.",
		PartnerSupport: "Suggest prenatal yoga or gentle exercise classes together.",
		Preparation:    "Start creating a baby budget for upcoming expenses.",
	},
	12: {
		DadTip:         "Many couples announce their pregnancy at this milestone.",
		PartnerSupport: "The first trimester is ending, but fatigue may still be an issue.",
		Preparation:    "Consider signing up for childbirth classes together.",
	},
	13: {
		DadTip:         "Start reading books about fatherhood and parenting.",
		PartnerSupport: "Energy levels may be improving - plan a special date night.",
		Preparation:    "Begin researching doulas if you're considering one for labor support.",
	},
	14: {
		DadTip:         "The baby can now hear sounds - start talking to your baby.",
		PartnerSupport: "Help research maternity clothes as the baby bump grows.",
		Preparation:    "Tour different birthing centers or hospital maternity wards.",
	},
	15: {
		DadTip:         "Attend doctor appointments whenever possible.",
		PartnerSupport: "Monitor weight gain with positivity and encouragement.",
		Preparation:    "Begin thinking about childproofing needs for your home.",
	},
	16: {
		DadTip:         "You might be able to feel the baby move soon!",
		PartnerSupport: "Help track nutrition and ensure she gets enough protein.",
		Preparation:    "Start thinking about the nursery design and baby gear research.",
	},
	17: {
		DadTip:         "Research the different stages of labor and how to help.",
		PartnerSupport: "Suggest a pregnancy-safe spa day or massage for relaxation.",
		Preparation:    "Consider setting up a baby registry if planning a shower.",
	},
	18: {
		DadTip:         "Start researching infant sleep safety and schedules.",
		PartnerSupport: "Offer foot rubs as feet may begin swelling.",
		Preparation:    "Learn about baby proofing basics for your home.",
	},
	19: {
		DadTip:         "Consider taking parenting classes together.",
		PartnerSupport: "Be understanding of body image concerns as pregnancy progresses.",
		Preparation:    "Research different types of car seats and their safety ratings.",
	},
	20: {
		DadTip:         "This is often when you can learn the baby's sex if you choose to.",
		PartnerSupport: "Go shopping together for maternity clothes if needed.",
		Preparation:    "Research car seats and strollers - there are many options to consider.",
	},
	21: {
		DadTip:         "Keep track of baby movement patterns together.",
		PartnerSupport: "Help research remedies for pregnancy discomforts.",
		Preparation:    "Begin comparing childcare options if returning to work.",
	},
	22: {
		DadTip:         "Consider reading books aloud to the baby.",
		PartnerSupport: "Prepare healthy meals rich in iron and protein.",
		Preparation:    "Start acquiring essential baby furniture like a crib and changing table.",
	},
	23: {
		DadTip:         "Create a birth plan together detailing preferences for delivery.",
		PartnerSupport: "Be sensitive to increased emotional sensitivity.",
		Preparation:    "Learn infant CPR and basic first aid.",
	},
	24: {
		DadTip:         "Talk and sing to your baby - they can hear you now!",
		PartnerSupport: "Suggest prenatal massage for back pain relief.",
		Preparation:    "Start putting together a baby registry if you plan to have one.",
	},
	25: {
		DadTip:         "Research local parenting groups to join after birth.",
		PartnerSupport: "Help update her wardrobe with comfortable clothing.",
		Preparation:    "Start gathering supplies for your hospital bag.",
	},
	26: {
		DadTip:         "Discuss labor support techniques and practice together.",
		PartnerSupport: "Be understanding of pregnancy brain and forgetfulness.",
		Preparation:    "Look into options for cord banking if interested.",
	},
	27: {
		DadTip:         "Research newborn care basics like diapering and swaddling.",
		PartnerSupport: "Help with regular stretching to alleviate discomfort.",
		Preparation:    "Complete any major home projects before the third trimester.",
	},
	28: {
		DadTip:         "Keep track of baby's kick counts with your partner.",
		PartnerSupport: "Help with stretching exercises to relieve discomfort.",
		Preparation:    "Take a hospital tour and pre-register for delivery.",
	},
	29: {
		DadTip:         "Create a playlist for labor and delivery.",
		PartnerSupport: "Help her find comfortable sleeping positions with pillows.",
		Preparation:    "Install baby monitor and test it out.",
	},
	30: {
		DadTip:         "Research newborn sleep strategies and schedules.",
		PartnerSupport: "Be prepared for increased bathroom breaks and nighttime awakening.",
		Preparation:    "Stock the freezer with prepared meals for after baby arrives.",
	},
	31: {
		DadTip:         "Learn about signs of labor and when to go to the hospital.",
		PartnerSupport: "Ensure she stays hydrated and comfortable in the heat.",
		Preparation:    "Create a list of phone numbers for important contacts.",
	},
	32: {
		DadTip:         "Practice the route to the hospital and time how long it takes.",
		PartnerSupport: "Help set up the nursery and assemble furniture.",
		Preparation:    "Pack the hospital bag together so you're prepared.",
	},
	33: {
		DadTip:         "Research breastfeeding basics so you can offer support.",
		PartnerSupport: "Engage in relaxation techniques together like meditation.",
		Preparation:    "Prepare your home for your return with the baby.",
	},
	34: {
		DadTip:         "Learn about cord clamping options and discuss preferences.",
		PartnerSupport: "Offer to massage swollen ankles and feet.",
		Preparation:    "Make sure the car seat is properly installed and inspected.",
	},
	35: {
		DadTip:         "Create a contact list of people to notify when labor begins.",
		PartnerSupport: "Be understanding of increasing physical discomfort.",
		Preparation:    "Prepare a postpartum care basket with essentials.",
	},
	36: {
		DadTip:         "Baby could arrive anytime now - keep your phone charged!",
		PartnerSupport: "Help with relaxation techniques for early labor.",
		Preparation:    "Install the car seat and have it checked by a certified technician.",
	},
	37: {
		DadTip:         "Research skin-to-skin benefits for dads and newborns.",
		PartnerSupport: "Validate her feelings about wanting pregnancy to be over.",
		Preparation:    "Set up a diaper changing station on each floor of your home.",
	},
	38: {
		DadTip:         "Pack snacks and comfort items for yourself at the hospital.",
		PartnerSupport: "Be ready to advocate for her needs during delivery.",
		Preparation:    "Wash all baby clothes and bedding with hypoallergenic detergent.",
	},
	39: {
		DadTip:         "Consider arranging paternity leave with your employer.",
		PartnerSupport: "Keep reminding her how amazing she is.",
		Preparation:    "Set up out-of-office messages and coverage for work.",
	},
	40: {
		DadTip:         "Be ready to go to the hospital at any moment.",
		PartnerSupport: "Patience is key - baby will come when ready.",
		Preparation:    "Make sure you know who to call and what to do when labor starts.",
	},
}
