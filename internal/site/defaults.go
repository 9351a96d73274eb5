package site

var (
	Bio = `As a Full Stack Developer with a fervent passion for problem-solving, I specialize in crafting highly intuitive and user-centric websites that significantly elevate the user experience.`

	StockiviaDescription = `An ambitious project set to revolutionize inventory and sales management in businesses, enhancing efficiency and integration.`

	DigitalBitwaveDescription = `An innovative firm providing website development, marketing, and design services to enhance digital presence for businesses.`
)

// Default returns the built-in page content. Every call returns a fresh copy.
func Default() *Site {
	return &Site{
		Title: "Pagimos",
		Profile: Profile{
			Name:     "Hi, I'm Pagimos.",
			Subtitle: "Full Stack developer",
			Avatar:   "images/avatar.png",
			Bio:      Bio,
		},
		SocialLinks: []SocialLink{
			{
				ID:             "github",
				Href:           "https://github.com/pagimos",
				Icon:           "github",
				HoverBgClass:   "hover-github",
				IconColor:      "#f0f0f0",
				HoverIconColor: "#000000",
				Label:          "Github",
			},
			{
				ID:             "linkedin",
				Href:           "https://www.linkedin.com/in/pagimos/",
				Icon:           "linkedin",
				HoverBgClass:   "hover-linkedin",
				IconColor:      "#0077b5",
				HoverIconColor: "#ffffff",
				Label:          "LinkedIn",
			},
			{
				ID:             "instagram",
				Href:           "https://www.instagram.com/pagimos/",
				Icon:           "instagram",
				HoverBgClass:   "hover-instagram",
				IconColor:      "#d6249f",
				HoverIconColor: "#ffffff",
				Label:          "Instagram",
			},
			{
				ID:             "twitter",
				Href:           "https://twitter.com/pagimos",
				Icon:           "twitter",
				HoverBgClass:   "hover-twitter",
				IconColor:      "#00ACEE",
				HoverIconColor: "#ffffff",
				Label:          "Twitter",
			},
		},
		Projects: []Project{
			{
				Href:        "https://www.stockivia.com",
				ImageSrc:    "images/stockivia.png",
				Title:       "Stockivia",
				Description: StockiviaDescription,
			},
			{
				Href:        "https://www.digitalbitwave.com",
				ImageSrc:    "images/dbitwave.png",
				Title:       "Digital Bitwave",
				Description: DigitalBitwaveDescription,
			},
		},
		Posts: []Post{
			{Href: "#", Title: "Building the Future: How I Developed a Progressive Web App for Offline Use", Date: "07-02-2024"},
			{Href: "#", Title: "Data at Scale: Architecting a High-Performance Database Solution", Date: "21-01-2024"},
			{Href: "#", Title: "From Concept to Reality: My Journey Creating a Cross-Platform Mobile App", Date: "27-10-2023"},
			{Href: "#", Title: "Elevating User Experience: Implementing AI-Driven Chatbots in E-Commerce", Date: "10-05-2023"},
			{Href: "#", Title: "Securing the Digital World: Strategies for Robust Web Application Security", Date: "02-03-2023"},
		},
		Footer: "Pagimos © 2024. All rights reserved.",
	}
}
