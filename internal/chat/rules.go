package chat

// Canned assistant script. Texts follow the original site copy; quick
// replies are the exact labels the widget renders as buttons, so the
// engine's exact-match rules key off them.

var topLevelQuickReplies = []string{
	"Book Free Consultation",
	"Get Pricing Info",
	"Explore Services",
	"Ask Questions",
}

const welcomeText = `Hi! I'm the SlashByte Assistant.

I can help you:
- Book a free consultation
- Get pricing information
- Explore our AI & digital services
- Answer questions about our work

What would you like to do?`

const pricingText = `Here's our pricing overview:

AI Solutions:
- Chatbots: $2,000 - $8,000
- RAG Systems: $5,000 - $15,000
- Custom AI Apps: $3,000 - $12,000

Web Development:
- Business Websites: $3,000 - $10,000
- E-commerce: $5,000 - $20,000
- Web Apps: $8,000 - $25,000

Content Services:
- Blog Writing: $300 - $800/month
- Social Media: $500 - $1,500/month
- Full Strategy: $1,000 - $3,000/month

Want a personalized quote?`

var pricingQuickReplies = []string{"Book Consultation for Quote", "Tell Me More", "Back to Main Menu"}

const servicesText = `We offer three main service categories:

AI Solutions
- Chatbots (Voice & Text)
- RAG Document Systems
- AI-Powered Applications

Digital Development
- Website Development
- Mobile Applications
- E-commerce Platforms

Content & Marketing
- Content Creation
- Social Media Management
- SEO & Digital Marketing

Which area interests you most?`

var servicesQuickReplies = []string{"AI Solutions", "Digital Development", "Content & Marketing", "Book Consultation"}

const questionsText = `I'm here to help! You can ask me about:

- Our AI chatbot capabilities
- Website development process
- Content marketing strategies
- Project timelines and pricing
- Our team and experience
- Case studies and portfolio

What would you like to know?`

const aiText = `Great choice! Our AI solutions include:

Chatbots:
- Web, WhatsApp, Voice integration
- 24/7 customer support automation
- Multi-language support

RAG Systems:
- Document search & Q&A
- Knowledge base creation
- Secure enterprise solutions

Custom AI Apps:
- Streamlit/Gradio dashboards
- Predictive analytics
- Process automation

Would you like:`

var aiQuickReplies = []string{"See AI Demo", "Discuss Custom Solution", "Get AI Pricing", "Book AI Consultation"}

const webText = `Excellent! Our development services:

Websites:
- Responsive business sites
- E-commerce platforms
- Custom web applications

Mobile Apps:
- iOS & Android development
- Cross-platform solutions
- AI-integrated apps

Features:
- Modern design & UX
- SEO optimization
- Performance focused

Interested in:`

var webQuickReplies = []string{"Free Website Audit", "Request Development Quote", "View Portfolio", "Book Dev Consultation"}

const contentText = `Perfect! Our content services:

Content Creation:
- Blog posts & articles
- Social media content
- Email campaigns

Strategy & Management:
- Content planning
- Social media management
- SEO optimization

Results:
- Increased engagement
- Better search rankings
- Lead generation

Want to:`

var contentQuickReplies = []string{"Get Content Sample", "Content Strategy Call", "Content Pricing", "Book Content Consultation"}

const demoText = `I'd love to show you our AI capabilities!

We can demonstrate:
- Live chatbot interactions
- Document Q&A with RAG
- Voice AI integration
- Custom AI applications

To set up your personalized demo, let's schedule a quick 15-minute call. Sound good?`

var demoQuickReplies = []string{"Yes, Book Demo Call", "Tell Me More First", "Back to AI Solutions"}

const portfolioText = `Check out our recent work!

AI Projects:
- Healthcare chatbot system
- Enterprise RAG platform
- E-commerce AI integration

Web Development:
- Corporate website redesigns
- E-commerce platforms
- Custom web applications

Content Success:
- 200% engagement increase
- SEO ranking improvements
- Lead generation campaigns

Want to discuss a similar project for your business?`

var portfolioQuickReplies = []string{"Yes, Let's Discuss", "Tell Me More", "Book Consultation"}

const backToMenuText = "What else can I help you with?"

const fallbackText = `I'd be happy to help with that! Here are some ways I can assist:

- Book a consultation - Free 15-min call
- Get pricing - Customized quotes
- Learn about services - AI, web, content
- Ask specific questions - Technical details

What interests you most?`

const leadIntroText = "Happy to send details over! First, what's your name?"

const bookingIntroText = `Perfect! Let's book your free 15-minute consultation.

First, what's your name?`

var cancelQuickReplies = []string{"Try Booking Again", "Get Pricing Info", "Explore Services", "Ask Questions"}

var afterBookingQuickReplies = []string{"Ask Another Question", "Explore Services", "End Chat"}

var afterLeadQuickReplies = []string{"Yes, Book Call Now", "Just Send Info", "Ask Another Question"}
