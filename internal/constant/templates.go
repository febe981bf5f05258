package constant

// ContextPlaceholder is substituted with a concern phrase such as
// " about your studies"; when no concern is detected it becomes "".
const ContextPlaceholder = "{context}"

// ResponseTemplates binds each emotion to its supportive reply templates.
// The composer picks one uniformly via its injected RNG. Emotions without
// a dedicated list fall back to GeneralSupportTemplates.
var ResponseTemplates = map[string][]string{
	"anxious": {
		"I can hear that you're feeling anxious{context}. That's a tough feeling to carry, but anxiety is temporary and you're stronger than you think. Take a deep breath and ground yourself - you've handled difficult moments before and you'll get through this too. 💙",
		"That anxious feeling{context} sounds overwhelming right now. Your body is trying to protect you, even though it feels uncomfortable. Try noticing 5 things you can see and 4 you can touch around you. You have the tools to manage this. 🌿",
		"Anxiety{context} can feel so heavy, like a weight on your chest that won't lift. Remember that you've survived 100% of your difficult days so far. This moment is temporary, even if it feels endless while you're in it. 🌸",
	},
	"sad": {
		"I'm really sorry you're feeling this sadness{context}. It's okay to feel this way - sadness shows you have a deep capacity to care. You don't have to be strong all the time. This feeling is temporary, even if it doesn't feel like it right now. 💜",
		"That sadness{context} sounds heavy, and I want you to know it's okay to not be okay right now. Your feelings are valid and important. Be gentle with yourself today and allow yourself to feel without judgment. 🌧️",
		"I hear you're carrying sadness{context} and that must feel exhausting. Emotions come in waves - this feeling won't last forever. You're not alone in this, and brighter days will come again. 💙",
	},
	"stressed": {
		"I can hear how overwhelmed you're feeling{context}. That stress is real and valid. Remember: you don't have to handle everything perfectly, and good enough is truly enough. You're doing your best, and that's more than sufficient. 💪",
		"That stress{context} sounds exhausting. Your body and mind are telling you they need a break, and it's important to listen. Even small moments of rest can help recharge your batteries. You deserve moments of peace. 🌿",
		"I understand you're feeling stressed{context} and everything probably feels like too much right now. Focus on just one small thing you can control in this moment. You don't have to solve everything at once. 💙",
	},
	"confused": {
		"I understand you're feeling confused{context}. That uncertainty can be really uncomfortable. It's okay not to have all the answers right now - clarity comes with time. 🤔",
		"That confusion{context} sounds frustrating. When things feel unclear, try breaking them down into smaller pieces. You don't need the whole picture right away. 💡",
		"I hear you're feeling uncertain{context}. It's completely normal to feel lost sometimes. Be patient with yourself as you navigate this - you're capable of finding your way. 🌟",
	},
	"lonely": {
		"I'm sorry you're feeling lonely{context}. That's such a painful feeling, especially when surrounded by people but still feeling alone. Your feelings are valid and you deserve connection. 💙",
		"That loneliness{context} sounds really hard. Even though I'm an AI, I want you to know you're heard right now. Consider reaching out to someone - you're not as alone as you feel. 🌟",
		"I understand you're feeling isolated{context}. Loneliness can feel like a heavy blanket. Be gentle with yourself and consider one small step toward connection - you deserve it. 💚",
	},
	"happy": {
		"That's wonderful to hear! 🎉 I'm so glad you're feeling good{context}. Keep embracing these positive moments - they're important fuel for the challenging days. Your happiness is well-deserved!",
		"I love hearing that you're feeling great{context}! 😊 Celebrate these moments fully and hold onto this positive energy as long as you can. You deserve all the good things coming your way.",
		"That's amazing! 🌈 So happy for you{context}. Savor every moment of this feeling, and remember it when times get tough - it's proof that happiness is possible.",
	},
	"calm": {
		"That's so lovely to hear! 😌 That peace and calm{context} sounds wonderful. Savor these moments of tranquility - they're precious and show your inner strength. 🌿",
		"I'm glad you're feeling peaceful{context}. That sense of calm is so valuable. Hold onto this feeling - it shows the balance you're creating in your life. 💚",
		"That calm feeling{context} sounds beautiful. You've found that peaceful space within yourself. Treasure these moments - they're the foundation of your wellbeing. 🌸",
	},
	"angry": {
		"I understand you're feeling angry{context}. That anger is valid - it often shows that something important to you has been violated. Try to channel that energy constructively when you're ready. 🔥",
		"That anger{context} sounds intense. It's okay to feel angry - it's a natural emotion. Take deep breaths and remember you're stronger than your anger. 💢",
		"I hear you're frustrated{context}. That anger is telling you something needs attention. Listen to what it's trying to say, but don't let it drive all your decisions. You're in control. ⚡",
	},
	"guilty": {
		"I hear that you're feeling guilty{context}. Everyone makes mistakes - it's part of being human. What matters is learning and growing from them. Be kind to yourself. 💙",
		"Guilt{context} shows you have a conscience and care about your impact on others. That's actually a strength. If you need to make amends, do so gently - then work on forgiving yourself. 🌟",
		"Feeling guilty{context} can be heavy. Ask yourself: is this guilt helping you grow, or just punishing you? If you've learned the lesson, be compassionate with yourself. 💚",
	},
	"proud": {
		"You absolutely should be proud{context}! 🏆 Your accomplishments are real and meaningful. Take a moment to truly celebrate - you've earned this.",
		"That sense of pride{context} is so well-deserved! 🌟 Own your achievements - you worked hard for them. This is your moment to shine.",
		"Feeling proud{context} is exactly right! 💪 Your success didn't happen by accident - it came from your effort and determination. Celebrate yourself!",
	},
	"relieved": {
		"I can imagine what a weight lifted{context}! 😌 Relief feels so good after carrying that burden. Take a deep breath and enjoy this moment of peace. You got through it! 🌿",
		"That relief{context} must feel amazing! 💚 You made it through. Take time to recover and appreciate this lighter feeling.",
		"Relief{context} is such a beautiful feeling! 🌸 You've been carrying stress and can finally release it. Savor this peace - you've earned every bit of it.",
	},
	"grateful": {
		"Gratitude{context} is such a powerful emotion! 🙏 It's beautiful that you're recognizing the good in your life. This mindset will bring even more positivity your way. 💚",
		"I love that you're feeling grateful{context}! 🌟 Appreciation for the good things magnifies joy. Hold onto this feeling - it's transformative.",
		"That gratitude{context} shows a beautiful heart! 🌻 Being thankful even in challenging times is a strength. Keep nurturing that appreciative spirit.",
	},
	"motivated": {
		"That motivation{context} is powerful! 🔥 Ride this wave of determination - it will carry you far. Channel this energy into action and watch yourself soar. 💪",
		"I love this motivated energy{context}! ⚡ When you feel this driven, amazing things happen. Use this momentum wisely - you're unstoppable right now.",
		"Your motivation{context} is inspiring! 🌟 This is the perfect time to chase your goals. Strike while the iron is hot.",
	},
	"excited": {
		"I can feel your excitement{context}! 🎉 That energy is amazing. Ride this wave of enthusiasm - it's powerful and will help you achieve great things.",
		"Your excitement is contagious{context}! 🌟 This anticipation and energy is wonderful. Channel it into action and watch amazing things unfold.",
		"This is so exciting{context}! 🎊 That electric feeling of anticipation is one of life's best emotions. Enjoy every moment and let it fuel your next steps.",
	},
	"disappointed": {
		"I understand you're feeling disappointed{context}. That feeling of letdown is really tough when things didn't go as you hoped. Disappointment doesn't define your worth or future success. This is just one moment, not your whole story. 💙",
		"That disappointment{context} sounds really hard to carry right now. It's okay to feel this way when expectations weren't met. Setbacks are often stepping stones to comebacks. 🌿",
		"I hear you're dealing with disappointment{context}. That feeling when things don't work out can be discouraging, but it doesn't mean you failed. This feeling will pass with time. 💚",
	},
	"worried": {
		"I can hear that you're worried{context}. That concern shows you're thoughtful, but constant worrying can be exhausting. Try to focus on what you can control and let go of what you can't. 💙",
		"That worry{context} sounds like it's weighing heavily on you. Your mind is trying to protect you by anticipating problems. Take a deep breath and remember you've handled challenges before. 🌿",
		"That worried feeling{context} is completely understandable when things feel uncertain. Many things we worry about never actually happen. Take things one step at a time. 🌸",
	},
	"tired": {
		"I can hear how exhausted you're feeling{context}. That fatigue is your body and mind telling you they need rest. It's okay to slow down - you deserve rest without guilt. 💙",
		"That tired feeling{context} sounds completely overwhelming right now. When you're running on empty, everything feels harder. Please prioritize rest - taking breaks is essential. 🌿",
		"That fatigue{context} is your body's signal that something needs to change. Listen to what it's telling you. You can't pour from an empty cup - refill yours first. 🌸",
	},
}

// GeneralSupportTemplates back any emotion without a dedicated list.
var GeneralSupportTemplates = []string{
	"I'm here to listen{context}. Whatever you're going through, your feelings are valid and important. You don't have to face this alone. 💙",
	"Thank you for sharing this with me{context}. It takes courage to express what you're feeling. Difficult moments don't last forever, and you're more resilient than you realize. 🌿",
	"I hear you, and what you're experiencing matters{context}. Be gentle with yourself - you're doing the best you can with what you have right now, and that's genuinely enough. 💚",
	"That sounds really challenging{context}. Expressing your feelings is a sign of strength, not weakness. You're not alone in this, even when it might feel that way. 🌸",
}

// GreetingResponses rotate on the greeting intent.
var GreetingResponses = []string{
	"Hello! I'm here to support you. How are you feeling today? 😊",
	"Hi there! I'm glad you reached out. What's on your mind? 💙",
	"Hey! I'm here to listen. How can I support you today? 🌟",
	"Hello! It's good to connect with you. How are you doing? 🌿",
	"Hi! I'm here to help. Feel free to share whatever's on your mind. 💚",
}

// PoliteFallbacks answer neutral or empty messages. The bot never says
// "I don't understand".
var PoliteFallbacks = []string{
	"Thank you for sharing that with me. I'm here to listen to whatever you'd like to talk about. How are you feeling right now? 💙",
	"I appreciate you reaching out. Sometimes it helps to talk things through. What's been on your mind lately? 🌿",
	"I'm here to support you. Feel free to share more about what's going on, or we can just chat. Whatever feels right for you. 💚",
	"I'm glad you're here. Sometimes just having someone to talk to can make a difference. What's on your heart today? ✨",
}

// Fixed academic-content messages.
const (
	NotesResultsMessage   = "I found these notes:"
	SubjectsListMessage   = "Available subjects:"
	UnitsListMessage      = "Here are the units I have for this subject:"
	NoNotesMessage        = "No study materials available yet. Admin will add notes soon!"
	ArchiveResultsMessage = "I found these PYQ materials:"
	ArchiveListMessage    = "Available PYQ materials:"
	NoArchiveMessage      = "No PYQ materials available yet. Admin will add them soon!"

	SessionExpiredMessage = "Session expired. Please login again."

	UnknownFallbackMessage = "I'm sorry, I don't have specific information about that topic. The admin will add relevant information soon. Is there anything else I can help you with today?"
)
