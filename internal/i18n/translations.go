package i18n

// Static display copy for the six supported locales. These tables are data,
// not logic; keys mirror the web portal's copy deck.
var translations = map[string]map[Language]string{
	// General
	"farmGuard": {
		EN: "FarmGuard",
		HI: "फार्मगार्ड",
		TA: "பார்ம்கார்டு",
		TE: "ఫార్మ్‌గార్డ్",
		BN: "ফার্মগার্ড",
		MR: "फार्मगार्ड",
	},
	"role": {
		EN: "Role",
		HI: "भूमिका",
		TA: "பங்கு",
		TE: "పాత్ర",
		BN: "ভূমিকা",
		MR: "भूमिका",
	},
	"status": {
		EN: "Status",
		HI: "स्थिति",
		TA: "நிலை",
		TE: "స్థితి",
		BN: "স্ট্যাটাস",
		MR: "स्थिती",
	},
	"date": {
		EN: "Date",
		HI: "तारीख",
		TA: "தேதி",
		TE: "తేదీ",
		BN: "তারিখ",
		MR: "तारीख",
	},
	"farmer": {
		EN: "Farmer",
		HI: "किसान",
		TA: "விவசாயி",
		TE: "రైతు",
		BN: "কৃষক",
		MR: "शेतकरी",
	},
	"veterinarian": {
		EN: "Veterinarian",
		HI: "पशुचिकित्सक",
		TA: "கால்நடை மருத்துவர்",
		TE: "పశువైద్యుడు",
		BN: "পশুচিকিত্সক",
		MR: "पशुवैद्य",
	},
	"administrator": {
		EN: "Administrator",
		HI: "प्रशासक",
		TA: "நிர்வாகி",
		TE: "నిర్వాహకుడు",
		BN: "প্রশাসক",
		MR: "प्रशासक",
	},
	"consumer": {
		EN: "Consumer",
		HI: "उपभोक्ता",
		TA: "நுகர்வோர்",
		TE: "వినియోగదారు",
		BN: "ভোক্তা",
		MR: "ग्राहक",
	},
	"signIn": {
		EN: "Sign In",
		HI: "साइन इन करें",
		TA: "உள்நுழையவும்",
		TE: "సైన్ ఇన్ చేయండి",
		BN: "সাইন ইন করুন",
		MR: "साइन इन करा",
	},
	"home": {
		EN: "Home",
		HI: "होम",
		TA: "முகப்பு",
		TE: "హోమ్",
		BN: "হোম",
		MR: "मुख्यपृष्ठ",
	},

	// Navigation
	"dashboard": {
		EN: "Dashboard",
		HI: "डैशबोर्ड",
		TA: "டாஷ்போர்டு",
		TE: "డాష్‌బోర్డ్",
		BN: "ড্যাশবোর্ড",
		MR: "डॅशबोर्ड",
	},
	"alerts": {
		EN: "Alerts",
		HI: "अलर्ट",
		TA: "எச்சரிக்கைகள்",
		TE: "హెచ్చరికలు",
		BN: "সতর্কতা",
		MR: "सूचना",
	},
	"farmData": {
		EN: "Farm Data",
		HI: "फार्म डेटा",
		TA: "பண்ணை தரவு",
		TE: "వ్యవసాయ క్షేత్రం డేటా",
		BN: "খামারের ডেটা",
		MR: "फार्म डेटा",
	},
	"community": {
		EN: "Community",
		HI: "समुदाय",
		TA: "சமூகம்",
		TE: "సంఘం",
		BN: "সম্প্রদায়",
		MR: "समुदाय",
	},
	"settings": {
		EN: "Settings",
		HI: "सेटिंग्स",
		TA: "அமைப்புகள்",
		TE: "సెట్టింగ్‌లు",
		BN: "সেটিংস",
		MR: "सेटिंग्ज",
	},
	"logout": {
		EN: "Logout",
		HI: "लॉगआउट",
		TA: "வெளியேறு",
		TE: "లాగ్అవుట్",
		BN: "লগআউট",
		MR: "लॉगआउट",
	},

	// Community hub
	"communityHub": {
		EN: "Community Hub",
		HI: "सामुदायिक हब",
		TA: "சமூக மையம்",
		TE: "సంఘం హబ్",
		BN: "কমিউনিটি হাব",
		MR: "समुदाय केंद्र",
	},
	"newDiscussion": {
		EN: "New Discussion",
		HI: "नई चर्चा",
		TA: "புதிய கலந்துரையாடல்",
		TE: "కొత్త చర్చ",
		BN: "নতুন আলোচনা",
		MR: "नवीन चर्चा",
	},
	"postedBy": {
		EN: "Posted by",
		HI: "द्वारा पोस्ट किया गया",
		TA: "பதிவிட்டவர்",
		TE: "పోస్ట్ చేసిన వారు",
		BN: "পোস্ট করেছেন",
		MR: "पोस्ट केले",
	},
	"replies": {
		EN: "Replies",
		HI: "उत्तर",
		TA: "பதில்கள்",
		TE: "ప్రత్యుత్తరాలు",
		BN: "উত্তর",
		MR: "उत्तरे",
	},
	"views": {
		EN: "Views",
		HI: "विचार",
		TA: "பார்வைகள்",
		TE: "వీక్షణలు",
		BN: "দর্শন",
		MR: "दृश्ये",
	},
	"comment": {
		EN: "Comment",
		HI: "टिप्पणी",
		TA: "கருத்து",
		TE: "వ్యాఖ్య",
		BN: "মন্তব্য",
		MR: "टिप्पणी",
	},
	"cancel": {
		EN: "Cancel",
		HI: "रद्द करें",
		TA: "ரத்துசெய்",
		TE: "రద్దు చేయండి",
		BN: "বাতিল করুন",
		MR: "रद्द करा",
	},
	"post": {
		EN: "Post",
		HI: "पोस्ट",
		TA: "பதிவு",
		TE: "పోస్ట్",
		BN: "পোস্ট",
		MR: "पोस्ट",
	},
	"createDiscussionTitle": {
		EN: "Create a new discussion",
		HI: "एक नई चर्चा बनाएँ",
		TA: "புதிய கலந்துரையாடலை உருவாக்கவும்",
		TE: "కొత్త చర్చను సృష్టించండి",
		BN: "একটি নতুন আলোচনা তৈরি করুন",
		MR: "नवीन चर्चा तयार करा",
	},
	"title": {
		EN: "Title",
		HI: "शीर्षक",
		TA: "தலைப்பு",
		TE: "శీర్షిక",
		BN: "শিরোনাম",
		MR: "शीर्षक",
	},
	"titlePlaceholder": {
		EN: "What is your question or topic?",
		HI: "आपका प्रश्न या विषय क्या है?",
		TA: "உங்கள் கேள்வி அல்லது தலைப்பு என்ன?",
		TE: "మీ ప్రశ్న లేదా అంశం ఏమిటి?",
		BN: "আপনার প্রশ্ন বা বিষয় কি?",
		MR: "तुमचा प्रश्न किंवा विषय काय आहे?",
	},
	"contentPlaceholder": {
		EN: "Provide more details here...",
		HI: "यहां और विवरण प्रदान करें...",
		TA: "இங்கே மேலும் விவரங்களை வழங்கவும்...",
		TE: "ఇక్కడ మరిన్ని వివరాలను అందించండి...",
		BN: "এখানে আরও বিস্তারিত প্রদান করুন।",
		MR: "येथे अधिक तपशील द्या...",
	},
	"addReplyPlaceholder": {
		EN: "Write a reply...",
		HI: "एक उत्तर लिखें...",
		TA: "ஒரு பதிலை எழுதுங்கள்...",
		TE: "ఒక ప్రత్యుత్తరం రాయండి...",
		BN: "একটি উত্তর লিখুন...",
		MR: "एक उत्तर लिहा...",
	},
	"delete": {
		EN: "Delete",
		HI: "हटाएं",
		TA: "நீக்கு",
		TE: "తొలగించు",
		BN: "মুছে ফেলুন",
		MR: "हटवा",
	},
	"deletePostConfirm": {
		EN: "Are you sure you want to delete this discussion? This action cannot be undone.",
		HI: "क्या आप वाकई इस चर्चा को हटाना चाहते हैं? यह कार्रवाई पूर्ववत नहीं की जा सकती।",
		TA: "இந்த விவாதத்தை நீக்க விரும்புகிறீர்களா? இந்தச் செயலைச் செயல்தவிர்க்க முடியாது.",
		TE: "మీరు ఈ చర్చను తొలగించాలనుకుంటున్నారని ఖచితమేనా? ఈ చర్యను రద్దు చేయడం సాధ్యం కాదు.",
		BN: "আপনি কি এই আলোচনাটি মুছে ফেলতে চান? এই ক্রিয়াটি ফিরিয়ে আনা যাবে না।",
		MR: "तुम्हाला ही चर्चा हटवायची आहे का? ही क्रिया पूर्ववत केली जाऊ शकत नाही.",
	},
	"deleteCommentConfirm": {
		EN: "Are you sure you want to delete this reply?",
		HI: "क्या आप वाकई यह उत्तर हटाना चाहते हैं?",
		TA: "இந்தப் பதிலை நீக்க விரும்புகிறீர்களா?",
		TE: "మీరు ఈ ప్రత్యుత్తరాన్ని తొలగించాలనుకుంటున్నారని ఖచితమేనా?",
		BN: "আপনি কি এই উত্তরটি মুছে ফেলতে চান?",
		MR: "तुम्हाला हे उत्तर हटवायचे आहे का?",
	},

	// Assistant
	"chatbotGreeting": {
		EN: "Hello! I am your AI Biosecurity Assistant. How can I help you today? You can describe symptoms, upload an image, or send a voice message.",
		HI: "नमस्ते! मैं आपका एआई जैव सुरक्षा सहायक हूँ। आज मैं आपकी कैसे मदद कर सकता हूँ? आप लक्षण बता सकते हैं, एक छवि अपलोड कर सकते हैं, या एक ध्वनि संदेश भेज सकते हैं।",
		TA: "வணக்கம்! நான் உங்கள் AI உயிரியல் பாதுகாப்பு உதவியாளர். இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்? நீங்கள் அறிகுறிகளை விவரிக்கலாம், ஒரு படத்தை பதிவேற்றலாம், அல்லது ஒரு குரல் செய்தியை அனுப்பலாம்.",
		TE: "నమస్కారం! నేను మీ AI జీవభద్రత సహాయకుడిని. ఈ రోజు నేను మీకు ఎలా సహాయం చేయగలను? మీరు లక్షణాలను వివరించవచ్చు, ఒక చిత్రాన్ని అప్‌లోడ్ చేయవచ్చు, లేదా ఒక వాయిస్ సందేశం పంపవచ్చు.",
		BN: "হ্যালো! আমি আপনার এআই বায়োসিকিউরিটি অ্যাসিস্ট্যান্ট। আজ আমি আপনাকে কিভাবে সাহায্য করতে পারি? আপনি উপসর্গ বর্ণনা করতে, একটি ছবি আপলোড করতে, বা একটি ভয়েস বার্তা পাঠাতে পারেন।",
		MR: "नमस्कार! मी तुमचा AI जैवसुरक्षा सहाय्यक आहे. आज मी तुम्हाला कशी मदत करू शकेन? तुम्ही लक्षणे वर्णन करू शकता, एक प्रतिमा अपलोड करू शकता, किंवा एक व्हॉइस संदेश पाठवू शकता.",
	},
	"chatbotError": {
		EN: "Sorry, I am having trouble connecting. Please try again later.",
		HI: "क्षमा करें, मुझे कनेक्ट होने में समस्या आ रही है। कृपया बाद में पुन: प्रयास करें।",
		TA: "மன்னிக்கவும், எனக்கு இணைப்பதில் சிக்கல் உள்ளது. பிறகு முயற்சிக்கவும்.",
		TE: "క్షమించండి, కనెక్ట్ చేయడంలో నాకు సమస్య ఉంది. దయచేసి తర్వాత మళ్లీ ప్రయత్నించండి.",
		BN: "দুঃখিত, আমি সংযোগ করতে সমস্যা হচ্ছে। অনুগ্রহ করে পরে আবার চেষ্টা করুন।",
		MR: "क्षमस्व, मला कनेक्ट करण्यात समस्या येत आहे. कृपया नंतर पुन्हा प्रयत्न करा.",
	},
	"symptomChecker": {
		EN: "AI Symptom Checker",
		HI: "एआई लक्षण परीक्षक",
		TA: "AI அறிகுறி சரிபார்ப்பு",
		TE: "AI లక్షణ తనిఖీ",
		BN: "এআই উপসর্গ পরীক্ষক",
		MR: "AI लक्षण तपासक",
	},
	"typeMessage": {
		EN: "Describe symptoms or ask a question...",
		HI: "लक्षणों का वर्णन करें या एक प्रश्न पूछें...",
		TA: "அறிகுறிகளை விவரிக்கவும் அல்லது ஒரு கேள்வியைக் கேட்கவும்...",
		TE: "లక్షణాలను వివరించండి లేదా ఒక ప్రశ్న అడగండి...",
		BN: "উপসর্গ বর্ণনা করুন বা একটি প্রশ্ন জিজ্ঞাসা করুন...",
		MR: "लक्षणे वर्णन करा किंवा एक प्रश्न विचारा...",
	},
	"recordAudio": {
		EN: "Record Audio",
		HI: "ऑडियो रिकॉर्ड करें",
		TA: "ஆடியோவைப் பதிவுசெய்யவும்",
		TE: "ఆడియో రికార్డ్ చేయండి",
		BN: "অডিও রেকর্ড করুন",
		MR: "ऑडिओ रेकॉर्ड करा",
	},
	"stopRecording": {
		EN: "Stop Recording",
		HI: "रिकॉर्डिंग बंद करें",
		TA: "பதிவு செய்வதை நிறுத்து",
		TE: "రికార్డింగ్ ఆపండి",
		BN: "রেকর্ডিং বন্ধ করুন",
		MR: "रेकॉर्डिंग थांबवा",
	},
	"recording": {
		EN: "Recording...",
		HI: "रिकॉर्डिंग...",
		TA: "பதிவு செய்கிறது...",
		TE: "రికార్డింగ్...",
		BN: "রেকর্ডিং...",
		MR: "रेकॉर्डिंग...",
	},
	"audioMessage": {
		EN: "Audio Message",
		HI: "ऑडियो संदेश",
		TA: "ஆடியோ செய்தி",
		TE: "ఆడియో సందేశం",
		BN: "অডিও বার্তা",
		MR: "ऑडिओ संदेश",
	},

	// Alerts
	"alertTitleInactivePoultry": {
		EN: "AI Detected Inactive Poultry",
		HI: "एआई ने निष्क्रिय पोल्ट्री का पता लगाया",
		TA: "AI செயலற்ற கோழிகளைக் கண்டறிந்தது",
		TE: "AI నిష్క్రియాత్మక పౌల్ట్రీని గుర్తించింది",
		BN: "এআই নিষ্ক্রিয় পোল্ট্রি সনাক্ত করেছে",
		MR: "AI ने निष्क्रिय पोल्ट्री शोधली",
	},
	"alertDescInactivePoultry": {
		EN: "Multiple birds in Hen House 4 are showing prolonged periods of inactivity, which could be an early sign of illness. Please inspect immediately.",
		HI: "हेन हाउस 4 में कई पक्षी लंबे समय तक निष्क्रियता दिखा रहे हैं, जो बीमारी का प्रारंभिक संकेत हो सकता है। कृपया तुरंत निरीक्षण करें।",
		TA: "கோழி வீடு 4 இல் உள்ள பல பறவைகள் நீண்ட காலமாக செயலற்ற நிலையில் உள்ளன, இது நோயின் ஆரம்ப அறிகுறியாக இருக்கலாம். உடனடியாக ஆய்வு செய்யவும்.",
		TE: "హెన్ హౌస్ 4లోని అనేక పక్షులు ఎక్కువ కాలం నిష్క్రియాత్మకంగా ఉన్నాయి, ఇది అనారోగ్యానికి ప్రారంభ సంకేతం కావచ్చు. దయచేసి వెంటనే తనిఖీ చేయండి.",
		BN: "হেন হাউস ৪-এর একাধিক পাখি দীর্ঘ সময় ধরে নিষ্ক্রিয়তা দেখাচ্ছে, যা অসুস্থতার প্রাথমিক লক্ষণ হতে পারে। অনুগ্রহ করে অবিলম্বে পরিদর্শন করুন।",
		MR: "हेन हाऊस 4 मधील अनेक पक्षी दीर्घकाळ निष्क्रियता दर्शवत आहेत, जे आजाराचे प्रारंभिक लक्षण असू शकते. कृपया त्वरित तपासणी करा.",
	},
	"alertTitleIbdHotspot": {
		EN: "Predicted IBD Hotspot Nearby",
		HI: "आस-पास अनुमानित आईबीडी हॉटस्पॉट",
		TA: "அருகில் கணிக்கப்பட்ட IBD ஹாட்ஸ்பாட்",
		TE: "సమీపంలో ఊహించిన IBD హాట్‌స్పాట్",
		BN: "কাছাকাছি পূর্বাভাসিত IBD হটস্পট",
		MR: "जवळपास अपेक्षित IBD हॉटस्पॉट",
	},
	"alertDescIbdHotspot": {
		EN: "Our predictive model indicates a high probability of an Infectious Bursal Disease (IBD) outbreak within a 10km radius. Enhance biosecurity protocols.",
		HI: "हमारा पूर्वानुमान मॉडल 10 किमी के दायरे में संक्रामक बर्साइटिस रोग (आईबीडी) के प्रकोप की उच्च संभावना को इंगित करता है। जैव सुरक्षा प्रोटोकॉल को बढ़ाएं।",
		TA: "எங்கள் முன்கணிப்பு மாதிரி 10 கிமீ சுற்றளவில் தொற்றுநோய் பர்சல் நோய் (IBD) பரவுவதற்கான அதிக நிகழ்தகவைக் குறிக்கிறது. உயிரியல் பாதுகாப்பு நெறிமுறைகளை மேம்படுத்தவும்.",
		TE: "మా అంచనా నమూనా 10 కిలోమీటర్ల వ్యాసార్థంలో ఇన్ఫెక్షియస్ బుర్సల్ డిసీజ్ (IBD) వ్యాప్తి చెందే అధిక సంభావ్యతను సూచిస్తుంది. జీవభద్రత ప్రోటోకాల్‌లను మెరుగుపరచండి.",
		BN: "আমাদের ভবিষ্যদ্বাণীমূলক মডেলটি ১০ কিলোমিটার ব্যাসার্ধের মধ্যে সংক্রামক বার্সাল ডিজিজ (IBD) প্রাদুর্ভাবের উচ্চ সম্ভাবনা নির্দেশ করে। জৈব নিরাপত্তা প্রোটোকল বাড়ান।",
		MR: "आमचे पूर्वानुमान मॉडेल 10 किमी त्रिज्येमध्ये संक्रामक बर्सल रोगाच्या (IBD) प्रादुर्भावाची उच्च शक्यता दर्शवते. जैवसुरक्षा प्रोटोकॉल वाढवा.",
	},
	"alertTitleAvianFlu": {
		EN: "Confirmed Avian Flu Case",
		HI: "पुष्ट एवियन फ्लू मामला",
		TA: "உறுதிப்படுத்தப்பட்ட ஏவியன் ஃபுளூ வழக்கு",
		TE: "ధృవీకరించబడిన ఏవియన్ ఫ్లూ కేసు",
		BN: "নিশ্চিত এভিয়ান ফ্লু কেস",
		MR: "पुष्टी झालेला एव्हियन फ्लूचा रुग्ण",
	},
	"alertDescAvianFlu": {
		EN: "A case of H5N1 has been confirmed in a neighboring district. Heightened surveillance and strict movement control are advised.",
		HI: "पड़ोसी जिले में H5N1 का एक मामला सामने आया है। बढ़ी हुई निगरानी और सख्त आवाजाही नियंत्रण की सलाह दी जाती है।",
		TA: "அண்டை மாவட்டத்தில் H5N1 தொற்று உறுதி செய்யப்பட்டுள்ளது. அதிக கண்காணிப்பு மற்றும் கடுமையான நடமாட்டக் கட்டுப்பாடு அறிவுறுத்தப்படுகிறது.",
		TE: "పొరుగు జిల్లాలో H5N1 కేసు నిర్ధారించబడింది. పెరిగిన నిఘా మరియు కఠినమైన కదలిక నియంత్రణ సలహా ఇవ్వబడుతుంది.",
		BN: "প্রতিবেশী জেলায় H5N1-এর একটি ঘটনা নিশ্চিত করা হয়েছে। উচ্চতর নজরদারি এবং কঠোর চলাচল নিয়ন্ত্রণের পরামর্শ দেওয়া হচ্ছে।",
		MR: "शेजारील जिल्ह्यात H5N1 चा एक रुग्ण आढळला आहे. वाढीव पाळत ठेवणे आणि कठोर हालचाल नियंत्रणाची सल्ला दिली जाते.",
	},
	"alertTitleTempSpike": {
		EN: "Temperature Spike in Pig Pen",
		HI: "सुअर बाड़े में तापमान में वृद्धि",
		TA: "பன்றி பேனாவில் வெப்பநிலை அதிகரிப்பு",
		TE: "పంది పెన్‌లో ఉష్ణోగ్రత పెరుగుదల",
		BN: "পিগ পেনে তাপমাত্রার স্পাইক",
		MR: "डुक्कर पेनमधील तापमानात वाढ",
	},
	"alertDescTempSpike": {
		EN: "Sensors detected a 2°C rise in ambient temperature in Pig Pen B over the last hour. Check ventilation systems.",
		HI: "सेंसर ने पिछले घंटे में पिग पेन बी में परिवेश के तापमान में 2 डिग्री सेल्सियस की वृद्धि का पता लगाया है। वेंटिलेशन सिस्टम की जाँच करें।",
		TA: "சென்சார்கள் கடந்த ஒரு மணி நேரத்தில் பிக் பென் B இல் சுற்றுப்புற வெப்பநிலையில் 2°C உயர்வைக் கண்டறிந்துள்ளன. காற்றோட்டம் அமைப்புகளைச் சரிபார்க்கவும்.",
		TE: "గత గంటలో పిగ్ పెన్ Bలోని పరిసర ఉష్ణోగ్రతలో 2°C పెరుగుదలను సెన్సార్లు గుర్తించాయి. వెంటిలేషన్ సిస్టమ్‌లను తనిఖీ చేయండి.",
		BN: "সেন্সর গত এক ঘণ্টায় পিগ পেন বি-তে পরিবেষ্টিত তাপমাত্রায় ২ ডিগ্রি সেলসিয়াস বৃদ্ধি সনাক্ত করেছে। বায়ুচলাচল ব্যবস্থা পরীক্ষা করুন।",
		MR: "सेन्सर्सनी गेल्या तासात पिग पेन बी मधील वातावरणीय तापमानात 2°C वाढ नोंदवली आहे. वेंटिलेशन सिस्टीम तपासा.",
	},
	"alertTitleProtocolReminder": {
		EN: "Biosecurity Protocol Reminder",
		HI: "जैव सुरक्षा प्रोटोकॉल अनुस्मारक",
		TA: "உயிரியல் பாதுகாப்பு நெறிமுறை நினைவூட்டல்",
		TE: "జీవభద్రత ప్రోటోకాల్ రిమైండర్",
		BN: "বায়োসিকিউরিটি প্রোটোকল রিমাইন্ডার",
		MR: "जैवसुरक्षा प्रोटोकॉल स्मरणपत्र",
	},
	"aiCamera": {
		EN: "AI Camera",
		HI: "एआई कैमरा",
		TA: "AI கேமரா",
		TE: "AI కెమెరా",
		BN: "এআই ক্যামেরা",
		MR: "AI कॅमेरा",
	},
	"prediction": {
		EN: "Prediction",
		HI: "भविष्यवाणी",
		TA: "கணிப்பு",
		TE: "అంచనా",
		BN: "পূর্বাভাস",
		MR: "अंदाज",
	},

	// Consumer portal
	"verifyProduct": {
		EN: "Verify Product",
		HI: "उत्पाद सत्यापित करें",
		TA: "தயாரிப்பைச் சரிபார்க்கவும்",
		TE: "ఉత్పత్తిని ధృవీకరించండి",
		BN: "পণ্য যাচাই করুন",
		MR: "उत्पादन सत्यापित करा",
	},
	"verifyProductDesc": {
		EN: "Enter the unique ID found on your product packaging to verify its origin and safety status.",
		HI: "इसकी उत्पत्ति और सुरक्षा स्थिति को सत्यापित करने के लिए अपने उत्पाद पैकेजिंग पर पाया गया अद्वितीय आईडी दर्ज करें।",
		TA: "அதன் தோற்றம் மற்றும் பாதுகாப்பு நிலையைச் சரிபார்க்க உங்கள் தயாரிப்பு பேக்கேஜிங்கில் காணப்படும் தனிப்பட்ட ஐடியை உள்ளிடவும்.",
		TE: "దాని మూలం మరియు భద్రతా స్థితిని ధృవీకరించడానికి మీ ఉత్పత్తి ప్యాకేజింగ్‌పై కనిపించే ప్రత్యేక ఐడిని నమోదు చేయండి.",
		BN: "এর উৎস এবং সুরক্ষা স্থিতি যাচাই করতে আপনার পণ্যের প্যাকেজিংয়ে পাওয়া অনন্য আইডি প্রবেশ করান।",
		MR: "त्याचे मूळ आणि सुरक्षा स्थिती सत्यापित करण्यासाठी आपल्या उत्पादनाच्या पॅकेजिंगवर आढळणारा अद्वितीय आयडी प्रविष्ट करा.",
	},
	"verify": {
		EN: "Verify",
		HI: "सत्यापित करें",
		TA: "சரிபார்க்கவும்",
		TE: "ధృవీకరించండి",
		BN: "যাচাই করুন",
		MR: "सत्यापित करा",
	},
	"farmComplianceList": {
		EN: "Farm Compliance List",
		HI: "फार्म अनुपालन सूची",
		TA: "பண்ணை இணக்கப் பட்டியல்",
		TE: "వ్యవసాయ క్షేత్రం వర్తింపు జాబితా",
		BN: "খামার সম্মতি তালিকা",
		MR: "फार्म अनुपालन यादी",
	},
	"farmComplianceListDesc": {
		EN: "View a list of registered farms and their latest biosecurity compliance scores to make informed decisions.",
		HI: "सूचित निर्णय लेने के लिए पंजीकृत फार्मों और उनके नवीनतम जैव सुरक्षा अनुपालन स्कोर की सूची देखें।",
		TA: "தகவலறிந்த முடிவுகளை எடுக்க பதிவுசெய்யப்பட்ட பண்ணைகள் மற்றும் அவற்றின் சமீபத்திய உயிரியல் பாதுகாப்பு இணக்க மதிப்பெண்களின் பட்டியலைக் காண்க.",
		TE: "సమాచారం ఉన్న నిర్ణయాలు తీసుకోవడానికి నమోదు చేయబడిన వ్యవసాయ క్షేత్రాలు మరియు వాటి తాజా జీవభద్రత వర్తింపు స్కోర్‌ల జాబితాను వీక్షించండి।",
		BN: "অবগত সিদ্ধান্ত নিতে নিবন্ধিত খামার এবং তাদের সর্বশেষ জৈব নিরাপত্তা সম্মতি স্কোরের একটি তালিকা দেখুন।",
		MR: "माहितीपूर्ण निर्णय घेण्यासाठी नोंदणीकृत शेतांची आणि त्यांच्या नवीनतम जैवसुरक्षा अनुपालन गुणांची यादी पहा.",
	},
	"farmName": {
		EN: "Farm Name",
		HI: "फार्म का नाम",
		TA: "பண்ணை பெயர்",
		TE: "వ్యవసాయ క్షేత్రం పేరు",
		BN: "খামারের নাম",
		MR: "फार्मचे नाव",
	},
	"region": {
		EN: "Region",
		HI: "क्षेत्र",
		TA: "பிராந்தியம்",
		TE: "ప్రాంతం",
		BN: "অঞ্চল",
		MR: "प्रदेश",
	},
	"lastInspection": {
		EN: "Last Inspection",
		HI: "अंतिम निरीक्षण",
		TA: "கடைசி ஆய்வு",
		TE: "చివరి తనిఖీ",
		BN: "শেষ পরিদর্শন",
		MR: "शेवटची तपासणी",
	},
	"complianceScore": {
		EN: "Compliance Score",
		HI: "अनुपालन स्कोर",
		TA: "இணக்க மதிப்பெண்",
		TE: "వర్తింపు స్కోరు",
		BN: "কমপ্লায়েন্স স্কোর",
		MR: "अनुपालन गुण",
	},

	// Alert type labels
	"outbreak": {
		EN: "Outbreak",
		HI: "प्रकोप",
		TA: "நோய் வெடிப்பு",
		TE: "వ్యాప్తి",
		BN: "প্রাদুর্ভাব",
		MR: "प्रादुर्भाव",
	},
	"system": {
		EN: "System",
		HI: "सिस्टम",
		TA: "அமைப்பு",
		TE: "వ్యవస్థ",
		BN: "সিস্টেম",
		MR: "प्रणाली",
	},

	// Biosecurity audit statuses and checklist
	"complete": {
		EN: "Complete",
		HI: "पूर्ण",
		TA: "முடிந்தது",
		TE: "పూర్తయింది",
		BN: "সম্পূর্ণ",
		MR: "पूर्ण",
	},
	"inProgress": {
		EN: "In Progress",
		HI: "प्रगति में है",
		TA: "செயலில்",
		TE: "ప్రోగ్రెస్‌లో ఉంది",
		BN: "চলছে",
		MR: "प्रगतीपथावर",
	},
	"entryProtocols": {
		EN: "Entry Protocols",
		HI: "प्रवेश प्रोटोकॉल",
		TA: "நுழைவு நெறிமுறைகள்",
		TE: "ప్రవేశ ప్రోటోకాల్‌లు",
		BN: "প্রবেশ প্রোটোকল",
		MR: "प्रवेश प्रोटोकॉल",
	},
	"feedAndWater": {
		EN: "Feed & Water",
		HI: "चारा और पानी",
		TA: "தீவனம் மற்றும் நீர்",
		TE: "ఫీడ్ & నీరు",
		BN: "খাবার ও জল",
		MR: "चारा आणि पाणी",
	},
	"pestControl": {
		EN: "Pest Control",
		HI: "कीट नियंत्रण",
		TA: "பூச்சி கட்டுப்பாடு",
		TE: "తెగులు నియంత్రా",
		BN: "কীটপতঙ্গ নিয়ন্ত্রণ",
		MR: "कीड नियंत्रण",
	},
	"cleaning": {
		EN: "Cleaning & Disinfection",
		HI: "सफाई और कीटाणुशोधन",
		TA: "சுத்தம் மற்றும் கிருமி நீக்கம்",
		TE: "శుభ్రపరచడం & క్రిమిసంహారక",
		BN: "পরিষ্কার এবং জীবাণুমুক্তকরণ",
		MR: "स्वच्छता आणि निर्जंतुकीकरण",
	},
	"taskFootbaths": {
		EN: "Footbaths at all entrances are maintained",
		HI: "सभी प्रवेश द्वारों पर फुटबाथ बनाए रखा जाता है",
		TA: "அனைத்து நுழைவாயில்களிலும் கால் குளியல் பராமரிக்கப்படுகிறது",
		TE: "అన్ని ప్రవేశాల వద్ద ఫుట్‌బాత్‌లు నిర్వహించబడతాయి",
		BN: "সমস্ত প্রবেশপথে ফুটবাথ রক্ষণাবেক্ষণ করা হয়",
		MR: "सर्व प्रवेशद्वारांवर फूटबाथ राखले जातात",
	},
	"taskVisitorLog": {
		EN: "Visitor log is up-to-date",
		HI: "आगंतुक लॉग अद्यतित है",
		TA: "பார்வையாளர் பதிவு புதுப்பிக்கப்பட்டது",
		TE: "సందర్శకుల లాగ్ తాజాగా ఉంది",
		BN: "ভিজিটর লগ আপ-টু-ডেট",
		MR: "अभ्यागत लॉग अद्ययावत आहे",
	},
	"taskVehicleDisinfection": {
		EN: "Vehicle disinfection performed on entry",
		HI: "प्रवेश पर वाहन कीटाणुशोधन किया गया",
		TA: "நுழைவாயிலில் வாகன கிருமி நீக்கம் செய்யப்பட்டது",
		TE: "ప్రవేశంపై వాహన క్రిమిసంహారక చర్యలు జరిగాయి",
		BN: "প্রবেশের সময় গাড়ির জীবাণুমুক্তকরণ করা হয়েছে",
		MR: "प्रवेशावर वाहन निर्जंतुकीकरण केले",
	},
	"taskSecureFeed": {
		EN: "Feed storage is secure from pests",
		HI: "फ़ीड भंडारण कीटों से सुरक्षित है",
		TA: "தீவன சேமிப்பு பூச்சிகளிடமிருந்து பாதுகாப்பானது",
		TE: "ఫీడ్ నిల్వ తెగుళ్ళ నుండి సురక్షితంగా ఉంది",
		BN: "ফিড স্টোরেজ কীটপতঙ্গ থেকে নিরাপদ",
		MR: "चारा साठवण कीटकापासून सुरक्षित आहे",
	},
	"taskFlushWater": {
		EN: "Water lines flushed daily",
		HI: "पानी की लाइनें प्रतिदिन फ्लश की जाती हैं",
		TA: "நீர் பாதைகள் தினமும் சுத்தப்படுத்தப்படுகின்றன",
		TE: "నీటి లైన్లు రోజూ ఫ్లష్ చేయబడతాయి",
		BN: "জল লাইন প্রতিদিন ফ্লাশ করা হয়",
		MR: "पाण्याच्या लाईन्स दररोज फ्लश केल्या जातात",
	},
	"taskBaitStations": {
		EN: "Bait stations are checked and refilled",
		HI: "चारा स्टेशन की जाँच और फिर से भराई की जाती है",
		TA: "នុនি நிலையங்கள் சரிபார்க்கப்பட்டு மீண்டும் நிரப்பப்படுகின்றன",
		TE: "ఎర స్టేషన్లు తనిఖీ చేయబడతాయి మరియు తిరిగి నింపబడతాయి",
		BN: "টোপ স্টেশন চেক এবং রিফিল করা হয়",
		MR: "चारा स्टेशन्स तपासले आणि पुन्हा भरले जातात",
	},
	"taskNoRodentSigns": {
		EN: "No signs of rodent activity",
		HI: "कृंतक गतिविधि के कोई संकेत नहीं",
		TA: "கொறித்துண்ணிகளின் செயல்பாட்டிற்கு எந்த அறிகுறியும் இல்லை",
		TE: "ఎలుకల కార్యాచరణ సంకేతాలు లేవు",
		BN: "ইঁদুর কার্যকলাপের কোনো লক্ষণ নেই",
		MR: "उंदरांच्या हालचालीची कोणतीही चिन्हे नाहीत",
	},
	"taskPensCleaned": {
		EN: "Pens/houses cleaned of waste daily",
		HI: "बाड़े/घर प्रतिदिन कचरे से साफ किए जाते हैं",
		TA: "பேனாக்கள்/வீடுகள் தினமும் கழிவுகளிலிருந்து சுத்தம் செய்யப்படுகின்றன",
		TE: "పెన్నులు/ఇళ్ళు రోజూ వ్యర్థాల నుండి శుభ్రం చేయబడతాయి",
		BN: "কলম/ঘর প্রতিদিন বর্জ্য থেকে পরিষ্কার করা হয়",
		MR: "पेन/घरे दररोज कचऱ्यापासून स्वच्छ केली जातात",
	},

	// Month abbreviations for the trend table
	"monthJan": {EN: "Jan", HI: "जन", TA: "ஜன", TE: "జన", BN: "জানু", MR: "जाने"},
	"monthFeb": {EN: "Feb", HI: "फ़र", TA: "பிப்", TE: "ఫిబ్ర", BN: "ফেব্রু", MR: "फेब्रु"},
	"monthMar": {EN: "Mar", HI: "मार्च", TA: "மார்", TE: "మార్చి", BN: "মার্চ", MR: "मार्च"},
	"monthApr": {EN: "Apr", HI: "अप्रै", TA: "ஏப்", TE: "ఏప్రి", BN: "এপ্রিল", MR: "एप्रिल"},
	"monthMay": {EN: "May", HI: "मई", TA: "மே", TE: "మే", BN: "মে", MR: "मे"},
	"monthJun": {EN: "Jun", HI: "जून", TA: "ஜூன்", TE: "జూన్", BN: "জুন", MR: "जून"},
}
