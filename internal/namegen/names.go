package namegen

// dictionary holds the name parts for one locale. First and last name lists
// are kept disjoint.
type dictionary struct {
	male   []string
	female []string
	last   []string
}

var defaultDictionaries = map[string]dictionary{
	"en_NG": {
		male: []string{
			"Adebayo", "Chinedu", "Emeka", "Ibrahim", "Musa", "Tunde", "Oluwaseun", "Chukwuemeka", "Babatunde",
			"Segun", "Ikenna", "Abubakar", "Yusuf", "Kelechi", "Obinna", "Femi", "Kunle", "Aliyu", "Nnamdi",
			"Uchenna", "Ayodele", "Adewale", "Adekunle", "Olumide", "Olusegun", "Oluwatobi", "Tobi", "Tope",
			"Dapo", "Damilare", "Gbenga", "Jide", "Kayode", "Kolawole", "Lanre", "Niyi", "Rotimi", "Seyi",
			"Sola", "Tayo", "Wale", "Yemi", "Bolaji", "Dayo", "Deji", "Folarin", "Akin", "Akinwale", "Ayo",
			"Chidi", "Chijioke", "Chibuzo", "Chukwudi", "Ebuka", "Ejike", "Ekene", "Ifeanyi", "Ikechukwu",
			"Kenechukwu", "Nonso", "Okechukwu", "Onyeka", "Somtochukwu", "Tochukwu", "Uche", "Ugochukwu",
			"Nnaemeka", "Azubuike", "Amaechi", "Ahmed", "Aminu", "Bashir", "Garba", "Haruna", "Idris", "Isa",
			"Jibril", "Kabiru", "Mohammed", "Mustapha", "Nasiru", "Sani", "Shehu", "Tijani", "Usman", "Yakubu",
			"Zubairu", "Abdullahi", "Abdulrahman", "Bala", "Hassan", "Hussaini", "Ismaila", "Nuhu", "Sadiq",
			"Salisu", "Efosa", "Osagie", "Osaro", "Eghosa", "Ehis", "Ikpomwosa", "Etim", "Okon", "Edet",
			"Emmanuel", "Daniel", "Samuel", "Joseph", "Michael", "Peter", "John", "Paul", "Godwin", "Sunday",
			"Innocent", "Victor", "Godspower", "Goodluck", "Kingsley", "Chinonso", "Ikem", "Obafemi",
			"Timilehin", "Ademola", "Adeniyi", "Oladimeji", "Olamide", "Ayomide", "Babajide", "Moses",
			"Anthony", "Festus", "Gabriel", "Ibukun", "Kehinde", "Taiwo", "Lateef", "Rasheed", "Tajudeen",
		},
		female: []string{
			"Adaeze", "Ngozi", "Chiamaka", "Aisha", "Funmilayo", "Folake", "Amina", "Zainab", "Chioma", "Nneka",
			"Yetunde", "Bukola", "Halima", "Ifeoma", "Blessing", "Titilayo", "Hadiza", "Temitope", "Kemi",
			"Omolara", "Abimbola", "Adaobi", "Adanna", "Adunni", "Amarachi", "Chidinma", "Chinwe", "Chinyere",
			"Chisom", "Ebele", "Ezinne", "Ifunanya", "Kosisochukwu", "Nkechi", "Nkiruka", "Obiageli", "Oluchi",
			"Onyinye", "Uchechi", "Ugochi", "Ijeoma", "Amaka", "Nwakaego", "Adaku", "Adebimpe", "Adeola",
			"Adesua", "Ajoke", "Atinuke", "Bisola", "Bolanle", "Busola", "Dolapo", "Eniola", "Folasade",
			"Funke", "Iyabo", "Jumoke", "Mojisola", "Modupe", "Morenike", "Oluwakemi", "Omotola", "Opeyemi",
			"Remilekun", "Ronke", "Sade", "Simisola", "Tinuke", "Titi", "Toyin", "Tolani", "Wuraola", "Yewande",
			"Asabe", "Bilkisu", "Fatima", "Habiba", "Hafsat", "Hauwa", "Jamila", "Khadija", "Ladidi", "Maryam",
			"Nafisa", "Rabi", "Rukayya", "Safiya", "Salamatu", "Saratu", "Zulai", "Hajara", "Binta", "Aminat",
			"Osarugue", "Osasu", "Efe", "Eki", "Itohan", "Ivie", "Imaobong", "Idara", "Ekaette", "Uduak",
			"Mfon", "Grace", "Mercy", "Joy", "Patience", "Comfort", "Gift", "Peace", "Precious", "Faith",
			"Esther", "Deborah", "Ruth", "Mary", "Elizabeth", "Sarah", "Rebecca", "Hannah", "Victoria",
			"Chidera", "Adesola", "Damilola", "Oyinkansola", "Ebunoluwa", "Motunrayo", "Tolulope", "Oreoluwa",
			"Ifeoluwa",
		},
		last: []string{
			"Okafor", "Adeyemi", "Bello", "Ogunleye", "Eze", "Nwosu", "Okonkwo", "Balogun", "Olawale", "Chukwu",
			"Danjuma", "Onyekachi", "Oladipo", "Okoro", "Suleiman", "Afolabi", "Umar", "Adeleke", "Adeniran",
			"Adesanya", "Adewumi", "Ajayi", "Akande", "Akinola", "Akinyemi", "Alabi", "Aluko", "Arowolo",
			"Awolowo", "Babalola", "Bakare", "Fashola", "Fagbemi", "Fawole", "Ogunbiyi", "Ogundipe", "Ojo",
			"Ojukwu", "Okeke", "Okonjo", "Okpara", "Okwu", "Oladele", "Olaniyan", "Olatunji", "Oluwole",
			"Omotosho", "Onyeama", "Oyebanji", "Oyelaran", "Oyewole", "Popoola", "Salami", "Sanusi", "Shittu",
			"Soyinka", "Williams", "Achebe", "Agu", "Anyanwu", "Azikiwe", "Ezeh", "Ezekwesili", "Igwe",
			"Ihejirika", "Iwu", "Madu", "Mbah", "Nnaji", "Nwachukwu", "Nwankwo", "Nweke", "Obi", "Odili",
			"Odum", "Ogbu", "Okoli", "Okorie", "Onuoha", "Onwuka", "Ozor", "Udeh", "Ugwu", "Uzor", "Babangida",
			"Gambo", "Lawan", "Maikudi", "Shettima", "Tambuwal", "Yero", "Zakari", "Abacha", "Akpabio",
			"Bassey", "Ekpo", "Effiong", "Essien", "Inyang", "Udoh", "Umoh", "Etuk", "Obaseki", "Ogbemudia",
			"Igbinedion", "Iyamu", "Omoregie", "Ehigiator", "Okojie", "Oshiomhole", "Akpata", "Ighodaro",
			"Aigbe", "Adegoke", "Adeoye", "Adebisi", "Ogunde", "Olaleye", "Ibekwe", "Ndukwe", "Ekwueme",
			"Obasanjo", "Jonathan", "Tinubu", "Dikko", "Jega", "Kalu",
		},
	},
	"ne_NP": {
		male: []string{
			"राम", "श्याम", "हरि", "कृष्ण", "गोपाल", "सुरेश", "रमेश", "दिनेश", "विष्णु", "नारायण", "बिकास",
			"प्रकाश", "सन्तोष", "राजेश", "अनिल", "सुनिल", "दीपक", "महेश", "गणेश", "रवि", "अर्जुन", "आशिष",
			"अमित", "अजय", "अशोक", "भरत", "भीम", "विनोद", "विजय", "चन्द्र", "देवेन्द्र", "धर्मेन्द्र",
			"गोविन्द", "हेमन्त", "ईश्वर", "जनक", "जीवन", "कमल", "केशव", "किशोर", "लक्ष्मण", "मदन", "मनोज",
			"मोहन", "नवीन", "नरेश", "निर्मल", "पवन", "पुष्कर", "प्रदीप", "प्रमोद", "प्रविण", "राजु", "राजन",
			"रोशन", "सागर", "संजय", "शंकर", "शिव", "सुदीप", "सुरज", "उमेश", "उत्तम", "युवराज", "बिशाल", "बिमल",
			"दिपेन्द्र", "गगन", "हिमाल", "जगदीश", "कैलाश", "कुमार", "माधव", "मुकेश", "पदम", "प्रेम", "पृथ्वी",
			"राकेश", "रितेश", "सुवास", "सुशील", "तेज", "टंक", "उदय", "यम", "योगेश", "ज्ञान", "बलराम",
			"भुपेन्द्र", "दामोदर", "घनश्याम", "इन्द्र", "जयराम", "खडक", "मणि", "नन्द", "ओम", "पुरुषोत्तम",
			"रामचन्द्र", "शरद", "सिद्धार्थ", "सुर्य", "त्रिलोक", "उपेन्द्र", "कपिल", "आकाश", "अनुप", "अभिषेक",
			"सञ्जीव", "नितेश", "प्रशान्त", "रुपेश", "बद्री", "चेतन", "दिलिप", "गिरिराज", "हरिश", "जितेन्द्र",
			"कृष्णप्रसाद", "लोकेन्द्र", "महेन्द्र", "नरेन्द्र", "पशुपति", "राजकुमार", "शेखर", "सुरेन्द्र",
			"तिलक", "उज्ज्वल",
		},
		female: []string{
			"सीता", "गीता", "सरिता", "सुनिता", "अनिता", "कमला", "लक्ष्मी", "पार्वती", "सरस्वती", "राधा", "मीना",
			"रीता", "पूजा", "सपना", "निर्मला", "शान्ति", "कल्पना", "सुशिला", "अञ्जना", "बिमला", "गंगा", "यमुना",
			"जानकी", "दुर्गा", "धनमाया", "हिरा", "ज्योति", "करुणा", "किरण", "कुसुम", "लीला", "माया", "मञ्जु",
			"मोनिका", "नीता", "निशा", "पुष्पा", "पबित्रा", "रञ्जना", "रचना", "रेखा", "रोशनी", "रुपा", "सविता",
			"शर्मिला", "शोभा", "सुजाता", "सुमित्रा", "सुष्मा", "तारा", "तुलसी", "उमा", "यशोदा", "बिना", "भगवती",
			"चन्द्रकला", "दीपा", "दिव्या", "गौरी", "हेमा", "इन्दु", "कोपिला", "लता", "मालती", "मन्दिरा",
			"नम्रता", "नेहा", "पद्मा", "प्रमिला", "प्रेमा", "राजकुमारी", "रमिला", "सम्झना", "संगीता", "सरला",
			"शिल्पा", "सृजना", "सुलोचना", "स्वस्तिका", "तृष्णा", "उर्मिला", "विद्या", "बिन्दु", "अस्मिता",
			"अमृता", "आरती", "कविता", "बबिता", "मनिषा", "सुस्मिता", "प्रतिभा", "प्रिया", "अञ्जली", "अर्चना",
			"आशा", "उषा", "इन्दिरा", "ईशा", "अनुषा", "बन्दना", "चमेली", "देविका", "गीतु", "जमुना", "कान्छी",
			"लक्ष्मीमाया", "मुना", "निरु", "पूर्णिमा", "रम्भा", "सरोजा", "सुनैना", "टीका", "उपासना",
		},
		last: []string{
			"श्रेष्ठ", "शर्मा", "अधिकारी", "पौडेल", "थापा", "गुरुङ", "तामाङ", "राई", "लिम्बु", "मगर", "खड्का",
			"भट्टराई", "कोइराला", "पाण्डे", "जोशी", "बस्नेत", "कार्की", "घिमिरे", "न्यौपाने", "ढकाल", "शेर्पा",
			"लामा", "सुवेदी", "सापकोटा", "सिंह", "ठकुरी", "तिवारी", "उपाध्याय", "वाग्ले", "अर्याल", "बोहरा",
			"चौधरी", "देउवा", "धिताल", "हमाल", "जैसी", "खनाल", "लामिछाने", "महर्जन", "मल्ल", "ओली", "पन्त",
			"प्रधान", "रेग्मी", "रिजाल", "साह", "सिलवाल", "शाह", "शाक्य", "ताम्राकार", "तुलाधर", "बज्राचार्य",
			"भुसाल", "दुलाल", "गैरे", "कटुवाल", "खरेल", "मैनाली", "निरौला", "ओझा", "पराजुली", "रिमाल",
			"सिग्देल", "थपलिया", "दाहाल", "नेपाल", "उप्रेती", "आचार्य", "भण्डारी", "बराल", "बुढाथोकी", "केसी",
			"खत्री", "कुँवर", "ज्ञवाली", "गिरी", "पोखरेल", "गौतम", "लुइँटेल", "चापागाईं", "सेढाईं", "बस्याल",
			"भट्ट", "बिष्ट", "चन्द", "धामी", "दनुवार", "गिरि", "कर्माचार्य", "मानन्धर", "नकर्मी", "प्रजापति",
			"रञ्जित", "श्रेष्ठा", "थारु", "यादव", "झा", "मिश्र", "कुर्मी", "महतो", "राउत", "साउद", "ऐर",
			"बोगटी", "रोकाया", "शाही",
		},
	},
	"fr_FR": {
		male: []string{
			"Jean", "Pierre", "Michel", "André", "Philippe", "Alain", "Nicolas", "Julien", "Laurent",
			"Sébastien", "Thomas", "Antoine", "Louis", "Hugo", "Lucas", "Mathieu", "Olivier", "Guillaume",
			"Christophe", "Étienne", "François", "Éric", "Patrick", "Frédéric", "Daniel", "Stéphane", "Maxime",
			"Alexandre", "Romain", "Jérôme", "Yves", "Marcel", "René", "Henri", "Georges", "Paul", "Jacques",
			"Claude", "Gérard", "Bruno", "Didier", "Fabrice", "Gilles", "Hervé", "Lionel", "Marc", "Pascal",
			"Raymond", "Roger", "Serge", "Thierry", "Xavier", "Arnaud", "Benoît", "Cédric", "Damien",
			"Emmanuel", "Fabien", "Florian", "Gabriel", "Jonathan", "Kevin", "Léo", "Loïc", "Mickaël",
			"Quentin", "Raphaël", "Rémi", "Samuel", "Théo", "Timothée", "Valentin", "Adrien", "Baptiste",
			"Clément", "Gaël", "Jules", "Octave", "Régis", "Sylvain", "Tristan", "Victor", "Yann", "Aurélien",
			"Bastien", "Charles", "Édouard", "Félix", "Grégoire", "Hector", "Joël", "Lucien", "Mathis",
			"Nathan", "Robin", "Ulysse", "Amaury", "Anthony", "Armand", "Benjamin", "Cyril", "Denis", "Émile",
			"Fernand", "Gaston", "Guy", "Jean-Luc", "Jean-Marc", "Jean-Pierre", "Jérémie", "Marius", "Noé",
			"Pierre-Yves", "Sacha", "Thibault", "Tanguy", "Vivien", "Yannick",
		},
		female: []string{
			"Marie", "Nathalie", "Isabelle", "Sylvie", "Catherine", "Camille", "Julie", "Sophie", "Chantal",
			"Céline", "Léa", "Manon", "Chloé", "Emma", "Claire", "Aurélie", "Élodie", "Margaux", "Inès",
			"Juliette", "Françoise", "Christine", "Monique", "Valérie", "Sandrine", "Pauline", "Mathilde",
			"Anne", "Hélène", "Élise", "Louise", "Alice", "Jeanne", "Lucie", "Océane", "Charlotte", "Émilie",
			"Stéphanie", "Virginie", "Caroline", "Patricia", "Martine", "Nicole", "Brigitte", "Danielle",
			"Jacqueline", "Josette", "Madeleine", "Simone", "Yvonne", "Agnès", "Annie", "Bernadette", "Colette",
			"Denise", "Dominique", "Florence", "Geneviève", "Ginette", "Irène", "Karine", "Laurence", "Lydie",
			"Mireille", "Muriel", "Noëlle", "Odile", "Pascale", "Renée", "Solange", "Sabine", "Thérèse",
			"Véronique", "Zoé", "Adèle", "Agathe", "Amandine", "Anaïs", "Béatrice", "Capucine", "Clémence",
			"Delphine", "Éloïse", "Estelle", "Fanny", "Gaëlle", "Héloïse", "Jade", "Justine", "Lola", "Maëlle",
			"Marion", "Morgane", "Noémie", "Ophélie", "Rose", "Salomé", "Victoire", "Sarah", "Laura",
			"Gabrielle", "Anne-Marie", "Marie-Claire", "Marine", "Mélanie", "Nadine", "Paulette", "Raymonde",
			"Suzanne", "Sylviane", "Yolande", "Axelle", "Clarisse", "Constance", "Emmanuelle", "Gisèle",
			"Joséphine", "Léonie", "Lucienne", "Marthe", "Perrine",
		},
		last: []string{
			"Martin", "Bernard", "Dubois", "Robert", "Richard", "Petit", "Durand", "Leroy", "Moreau", "Simon",
			"Lefebvre", "Garcia", "David", "Bertrand", "Roux", "Vincent", "Fournier", "Garnier", "Faure",
			"Rousseau", "Blanc", "Guerin", "Muller", "Henry", "Roussel", "Perrin", "Morin", "Gauthier",
			"Dumont", "Lopez", "Fontaine", "Chevalier", "Masson", "Sanchez", "Nguyen", "Boyer", "Lemaire",
			"Duval", "Joly", "Gautier", "Roche", "Roy", "Meyer", "Meunier", "Perez", "Marchand", "Dufour",
			"Blanchard", "Barbier", "Brun", "Dumas", "Brunet", "Schmitt", "Leroux", "Colin", "Fernandez",
			"Renard", "Rolland", "Caron", "Aubert", "Giraud", "Leclerc", "Vidal", "Bourgeois", "Renaud",
			"Lemoine", "Picard", "Gaillard", "Leclercq", "Lacroix", "Fabre", "Dupuis", "Rodriguez", "Hubert",
			"Guillot", "Rivière", "Carpentier", "Moulin", "Deschamps", "Vasseur", "Collet", "Prevost", "Huet",
			"Charpentier", "Benoit", "Lebrun", "Tessier", "Jacquet", "Poirier", "Maréchal", "Breton", "Bouvier",
			"Cordier", "Rey", "Morel", "Girard", "Lefèvre", "Mercier", "Dupont", "Lambert", "Bonnet",
			"Martinez", "Legrand", "Kouassi", "Koné", "Traoré", "Ouattara", "Bamba", "Coulibaly", "Diabaté",
			"Touré", "Yao", "Konan", "Kouamé", "Aka", "Gbagbo", "Bédié", "Diallo", "Cissé", "Dosso", "Fofana",
			"Sangaré", "Kouadio",
		},
	},
	"fa_IR": {
		male: []string{
			"محمد", "علی", "حسین", "رضا", "مهدی", "امیر", "حمید", "سعید", "مجید", "کامران", "بهرام", "داریوش",
			"فرهاد", "مسعود", "پرویز", "کوروش", "بابک", "آرش", "سیاوش", "رامین", "حسن", "مصطفی", "جواد", "کاظم",
			"یوسف", "بهزاد", "بیژن", "پیمان", "جمشید", "شهرام", "فریدون", "کیوان", "مازیار", "منوچهر", "نادر",
			"هوشنگ", "آرمان", "امید", "ایمان", "بردیا", "بهنام", "پویا", "حامد", "خسرو", "سامان", "سهراب",
			"سینا", "شاهین", "عباس", "عرفان", "فرزاد", "فرشاد", "کیانوش", "مهرداد", "میلاد", "نیما", "وحید",
			"یاسر", "اکبر", "اصغر", "ابراهیم", "اسماعیل", "جلال", "جعفر", "حبیب", "حیدر", "رسول", "روزبه",
			"ساسان", "سجاد", "شهاب", "صادق", "عماد", "غلام", "فرامرز", "قاسم", "کریم", "مرتضی", "محسن",
			"محمدرضا", "مهران", "ناصر", "نوید", "هادی", "هومن", "آرین", "اردشیر", "اشکان", "پدرام", "تورج",
			"رستم", "سپهر", "سروش", "شایان", "فرشید", "کاوه", "کسری", "مانی", "مهیار", "احمد", "محمود",
			"حمیدرضا", "علیرضا", "امیرحسین", "ابوالفضل", "مجتبی", "مهدیار", "رحیم", "اسفندیار", "افشین",
			"شهریار", "کیارش",
		},
		female: []string{
			"فاطمه", "زهرا", "مریم", "سارا", "نرگس", "لیلا", "شیرین", "مهسا", "نازنین", "پریسا", "الهام",
			"سمیرا", "آزاده", "ترانه", "یاسمن", "نیلوفر", "گلناز", "شهرزاد", "رویا", "مینا", "فرشته", "فرناز",
			"گلاره", "لادن", "مرجان", "مژگان", "مهناز", "مهتاب", "نسرین", "هانیه", "آتنا", "آیدا", "افسانه",
			"اعظم", "بنفشه", "پرستو", "پگاه", "تینا", "دریا", "رها", "ریحانه", "زینب", "ساناز", "سپیده",
			"ستاره", "سحر", "سمانه", "سوسن", "شبنم", "شقایق", "شهلا", "صبا", "طاهره", "عاطفه", "فرانک", "فریبا",
			"کتایون", "کیمیا", "گلشیفته", "مرضیه", "معصومه", "منیژه", "مهری", "ناهید", "نسیم", "نفیسه", "نوشین",
			"هستی", "هما", "آرزو", "آسیه", "اکرم", "آذر", "بیتا", "پوران", "تهمینه", "جمیله", "خدیجه", "راحله",
			"رعنا", "ژیلا", "سودابه", "سولماز", "شکوفه", "فروغ", "گیتی", "محبوبه", "منصوره", "نادیا", "هاله",
			"آناهیتا", "بهاره", "پروانه", "ثریا", "ژاله", "سیمین", "شیما", "نگار", "مهشید", "مهرناز", "نیوشا",
			"ترمه", "الناز", "پرنیان", "ملیکا", "فاطیما",
		},
		last: []string{
			"احمدی", "محمدی", "حسینی", "رضایی", "کریمی", "موسوی", "جعفری", "صادقی", "رحیمی", "هاشمی", "نوری",
			"کاظمی", "قاسمی", "عباسی", "اکبری", "زمانی", "یزدانی", "شریفی", "طاهری", "مرادی", "حیدری", "زارعی",
			"نجفی", "ابراهیمی", "یوسفی", "اسدی", "باقری", "امینی", "خسروی", "سلیمانی", "کرمانی", "تهرانی",
			"شیرازی", "اصفهانی", "تبریزی", "یزدی", "کاشانی", "قزوینی", "همدانی", "رشتی", "مشهدی", "فراهانی",
			"بهرامی", "فرهادی", "ملکی", "نیکزاد", "پورمحمد", "سعیدی", "مختاری", "نظری", "صالحی", "رستمی",
			"فتحی", "قربانی", "کامرانی", "منصوری", "میرزایی", "نصیری", "وحیدی", "افشار", "بختیاری", "تقوی",
			"جلالی", "حقیقی", "خلیلی", "دهقان", "رحمانی", "سبحانی", "شجاعی", "صفوی", "عزیزی", "علوی", "فاضلی",
			"قادری", "کیانی", "گودرزی", "لطفی", "مجیدی", "مهدوی", "نادری", "هدایتی", "آقایی", "اسلامی",
			"اعتمادی", "بابایی", "پاکزاد", "توکلی", "جمالی", "حسنی", "خدادادی", "دانشور", "رنجبر", "شاکری",
			"طالبی", "عسگری", "فروتن", "قنبری", "کاویانی", "محمودی", "وکیلی", "کوهی", "اکبرزاده",
		},
	},
	"bn_BD": {
		male: []string{
			"রহিম", "করিম", "আব্দুল", "মোহাম্মদ", "জামাল", "কামাল", "রফিক", "শফিক", "হাসান", "সাকিব", "তানভীর",
			"আরিফ", "ইমরান", "মাহমুদ", "নাসির", "সুমন", "রাজু", "আনিস", "বাবুল", "আবদুল", "আহমদ", "আনোয়ার",
			"আলমগীর", "আমিনুল", "আশরাফ", "বেলাল", "দেলোয়ার", "ফারুক", "ফয়সাল", "গোলাম", "হাবিব", "হুমায়ুন",
			"ইকবাল", "জাহিদ", "খালিদ", "লিটন", "মামুন", "মাসুদ", "মিজান", "মনির", "মোস্তফা", "নজরুল", "রাকিব",
			"রাশেদ", "রিয়াজ", "সাইফুল", "শাহিন", "সোহেল", "তারেক", "তৌহিদ", "ওমর", "জাকির", "জাহাঙ্গীর",
			"জুবায়ের", "আজিজ", "আকবর", "আমির", "আরাফাত", "আতিক", "বাদল", "বিপ্লব", "অমিত", "অনুপ", "অরুণ",
			"অশোক", "বিকাশ", "বিমল", "দেবাশীষ", "গৌতম", "হরিদাস", "জয়ন্ত", "কৃষ্ণ", "মৃণাল", "নিখিল", "প্রদীপ",
			"প্রণব", "রাজীব", "রঞ্জন", "সঞ্জয়", "শুভ", "সুব্রত", "সুমিত", "তপন", "উত্তম", "অভিজিৎ", "ফাহিম",
			"হাফিজ", "ইরফান", "মাহফুজ", "মুনির", "নাঈম", "রাসেল", "রুবেল", "সাব্বির", "সজীব", "শামীম", "শরিফ",
			"তুহিন", "ইয়াসিন", "জিয়া", "এনামুল", "ফখরুল", "হেলাল", "কাওসার", "মারুফ", "মেহেদী", "নাজমুল",
			"রেজাউল", "সাজ্জাদ", "শহীদ", "তাহমিদ", "মাসুম", "মিঠু",
		},
		female: []string{
			"ফাতেমা", "আয়েশা", "নাসরিন", "শাহানা", "রুমানা", "সুমাইয়া", "তাসলিমা", "মরিয়ম", "শিরিন",
			"রেহানা", "নুসরাত", "ফারহানা", "সালমা", "জান্নাত", "মিতু", "রিমা", "সাবিনা", "লাইলা", "তানিয়া",
			"পারভীন", "শারমিন", "শাহনাজ", "নাজমা", "রোকসানা", "ফারজানা", "সাবরিনা", "তানজিলা", "খাদিজা",
			"জান্নাতুল", "তাহমিনা", "আফরোজা", "আসমা", "বিলকিস", "দিলরুবা", "ফাহমিদা", "ফেরদৌসী", "হালিমা",
			"হাসিনা", "ইয়াসমিন", "জেসমিন", "কামরুন", "লিপি", "মাহমুদা", "মমতাজ", "মুনমুন", "নাদিয়া", "নাফিসা",
			"নাজনীন", "রাবেয়া", "রাশিদা", "রেশমা", "রুবিনা", "সাদিয়া", "সাহানা", "শাম্মী", "শাপলা", "সুলতানা",
			"তাসনিম", "জাহানারা", "জরিনা", "আনিকা", "আরিফা", "আতিয়া", "ইশরাত", "মাহিয়া", "মিম", "নিপা",
			"রিয়া", "সুমি", "তিথি", "তৃষা", "অনন্যা", "অপর্ণা", "অর্পিতা", "বন্যা", "চন্দনা", "দীপা", "গীতা",
			"ইন্দিরা", "জয়া", "কাকলি", "কবিতা", "লতা", "মালবিকা", "মিতা", "মৌমিতা", "নন্দিনী", "পাপিয়া",
			"প্রিয়াঙ্কা", "রত্না", "রূপা", "শম্পা", "শ্রাবন্তী", "সুচিত্রা", "সুমিতা", "স্বপ্না", "তনুশ্রী",
			"সাথী", "শিউলি", "মুক্তা", "মৌসুমী", "রুমা", "পপি", "লাভলী", "হেনা",
		},
		last: []string{
			"আহমেদ", "হোসেন", "রহমান", "ইসলাম", "খান", "চৌধুরী", "সরকার", "মিয়া", "শেখ", "তালুকদার", "ভূঁইয়া",
			"মজুমদার", "বেপারী", "দাস", "রায়", "সিদ্দিকী", "হক", "আলম", "উদ্দিন", "মোল্লা", "আলী", "কবির",
			"আকন্দ", "দেওয়ান", "গাজী", "হাওলাদার", "জমাদার", "কাজী", "খন্দকার", "মাতবর", "মীর", "মৃধা",
			"মুন্সী", "পাঠান", "ফকির", "কুরেশি", "রশিদ", "সাত্তার", "সুলতান", "তরফদার", "ঠাকুর", "আকতার",
			"আজাদ", "বাশার", "ফারুকী", "হালদার", "জামান", "লস্কর", "মল্লিক", "নন্দী", "পোদ্দার", "রক্ষিত",
			"সরদার", "শাহ", "সিকদার", "প্রামানিক", "মণ্ডল", "ঘোষ", "দত্ত", "সেন", "চক্রবর্তী", "ব্যানার্জি",
			"মুখার্জি", "ভট্টাচার্য", "সাহা", "পাল", "দে", "নাথ", "বিশ্বাস", "কর", "গুহ", "পাটোয়ারী", "বসু",
			"মিত্র", "সিংহ", "বর্মন", "রায়চৌধুরী", "মাহবুব", "নূর", "হামিদ", "আশরাফী", "বেগ", "মির্জা",
			"সিরাজী", "পাটওয়ারী", "গোস্বামী", "ভৌমিক", "শীল", "বণিক", "আচার্য", "আনসারী", "ইমাম", "ওসমানী",
			"মোর্শেদ", "রাব্বানী", "সোবহান", "ফরাজী", "ঢালী", "খলিফা", "হাজারী", "মাহাতো", "বাগচী", "সান্যাল",
			"মৈত্র", "লাহিড়ী",
		},
	},
	"ar_SA": {
		male: []string{
			"محمد", "أحمد", "عبدالله", "خالد", "فهد", "سعود", "فيصل", "عبدالعزيز", "سلطان", "ناصر", "تركي",
			"بندر", "ماجد", "عمر", "يوسف", "إبراهيم", "سلمان", "نايف", "راشد", "حمد", "عبدالرحمن", "سعد",
			"سامي", "طلال", "وليد", "زياد", "مشعل", "منصور", "مازن", "هاني", "بدر", "ثامر", "جابر", "حسن",
			"حسين", "حمزة", "خليل", "رائد", "رياض", "زيد", "سالم", "سامر", "سليمان", "شادي", "صالح", "طارق",
			"عادل", "عامر", "عبدالملك", "عبدالمجيد", "عبدالكريم", "عثمان", "عصام", "علاء", "عماد", "عمرو",
			"غازي", "فارس", "فراس", "فواز", "قاسم", "كريم", "ماهر", "مالك", "متعب", "محمود", "مراد", "مروان",
			"مصطفى", "معاذ", "مهند", "موسى", "نبيل", "نواف", "هشام", "هيثم", "وائل", "ياسر", "يزيد", "أنس",
			"أسامة", "أيمن", "باسل", "تميم", "جمال", "حاتم", "حازم", "رامي", "ريان", "سيف", "شريف", "ضياء",
			"عبيد", "عزام", "عوض", "غسان", "مساعد", "مشاري", "ممدوح", "نادر", "نزار", "هادي", "وسام", "علي",
			"عبدالإله", "عبداللطيف", "عبدالرحيم",
		},
		female: []string{
			"فاطمة", "نورة", "سارة", "منى", "هيفاء", "ريم", "لطيفة", "عائشة", "مريم", "هند", "جواهر", "العنود",
			"دانة", "شهد", "لمى", "رهف", "أمل", "غادة", "بشرى", "وعد", "الجوهرة", "أسماء", "جميلة", "حصة",
			"حنان", "خلود", "دلال", "رنا", "روان", "ريما", "زينب", "سلمى", "سمر", "سهى", "شيماء", "عبير",
			"عفاف", "غدير", "فرح", "فوزية", "لبنى", "لينا", "مها", "ميساء", "ندى", "نوف", "نجلاء", "هالة",
			"هدى", "وفاء", "ياسمين", "آمنة", "أروى", "إيمان", "بدرية", "بسمة", "تهاني", "جنى", "حياة", "خديجة",
			"رغد", "رقية", "رزان", "سعاد", "سميرة", "شروق", "صفاء", "عبلة", "علياء", "غالية", "فدوى", "كوثر",
			"لولوة", "ليلى", "مشاعل", "منيرة", "موضي", "نادية", "نجود", "نهى", "هيا", "يارا", "أريج", "بتول",
			"تغريد", "جود", "حلا", "ديما", "رحاب", "سوسن", "عهود", "فجر", "مرام", "نسرين", "هنادي",
		},
		last: []string{
			"العتيبي", "القحطاني", "الغامدي", "الزهراني", "الشمري", "الدوسري", "الحربي", "المطيري", "العنزي",
			"السبيعي", "الشهري", "المالكي", "العمري", "الرشيدي", "الجهني", "البقمي", "الشهراني", "الخالدي",
			"التميمي", "السديري", "السهلي", "الأحمدي", "العسيري", "القرني", "الثبيتي", "الحارثي", "البلوي",
			"العطوي", "الفيفي", "اليامي", "الصيعري", "المري", "الهاجري", "العجمي", "الظفيري", "الراجحي",
			"العثيمين", "السليمان", "الجريسي", "الفوزان", "الحمدان", "الخضيري", "المنيف", "الشثري", "القرشي",
			"الهاشمي", "الأنصاري", "الخزرجي", "البكري", "الحسني", "الشريف", "الجابري", "الزامل", "العقيل",
			"النعيمي", "البيشي", "الشلوي", "الرويلي", "الحازمي", "الصاعدي", "اللحياني", "المولد", "باعشن",
			"باخشب", "بخاري", "الفاسي", "الكعكي", "المدني", "المكي", "الطائفي", "العبدلي", "المحمادي",
			"الجدعاني", "الرحيلي", "السلمي", "الشمراني", "البارقي", "الألمعي", "النجار", "الخطيب", "الحداد",
			"الصباغ", "العطار", "الموسى", "العيسى", "الحسين", "الصالح", "العمر", "الفهد", "العبدالله", "الغنام",
			"القاسم", "المنصور", "الدخيل", "الرميح", "الشايع", "البراك", "الخليفة", "العمران", "الربيعة",
		},
	},
}
