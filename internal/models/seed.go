package models

import (
	"time"

	"github.com/google/uuid"
)

type seedArticle struct {
	title       string
	category    Category
	readingTime int
	content     string
}

var seedArticles = []seedArticle{
	{
		title:       "The Power of Morning Routines",
		category:    CategoryProductivity,
		readingTime: 5,
		content: `Creating a consistent morning routine can transform your entire day. Successful people often share similar morning habits: they wake up early, exercise, meditate, and plan their day.

Key benefits:
- Increased energy and focus
- Better stress management
- Enhanced productivity
- Improved mental clarity

Start small and choose one habit to implement this week. Whether it is a 5-minute meditation or a glass of water upon waking, consistency matters more than perfection.

Tips for success:
1. Prepare the night before
2. Start with 15-minute blocks
3. Track your progress
4. Adjust as needed`,
	},
	{
		title:       "Mindfulness in Daily Life",
		category:    CategoryMindfulness,
		readingTime: 6,
		content: `Mindfulness is not just meditation. It is being present in every moment of your life, paying attention without judgment.

Daily practices:
- Mindful breathing (2-5 minutes)
- Body scan meditation
- Mindful eating
- Walking meditation
- Gratitude journaling

Studies link mindfulness with lower anxiety, better sleep and steadier emotional regulation.

Begin with two minutes a day. Find a quiet space, focus on your breath, and gently return your attention when your mind wanders. Even a few minutes daily can create lasting change.`,
	},
	{
		title:       "Unlocking Your Creative Potential",
		category:    CategoryCreativity,
		readingTime: 5,
		content: `Everyone is creative. Creativity is a skill you can develop through practice and the right mindset.

Breaking creative blocks:
- Change your environment
- Try new experiences
- Embrace constraints
- Practice free-form brainstorming
- Collaborate with others

The creative process:
1. Preparation: gather information
2. Incubation: let ideas simmer
3. Illumination: the "aha" moment
4. Verification: test and refine

Set aside 15 minutes a day for creative exploration without judgment.`,
	},
	{
		title:       "Effective Communication Skills",
		category:    CategoryCommunication,
		readingTime: 5,
		content: `Communication is the foundation of every relationship, personal and professional.

Active listening:
- Give full attention
- Avoid interruptions
- Ask clarifying questions
- Reflect back what you heard

Clear expression:
- Be concise and specific
- Use "I" statements
- Match your tone to your message
- Consider your audience

For difficult conversations choose the right time and place, stay calm, focus on solutions and practice empathy.`,
	},
	{
		title:       "Building Emotional Wellness",
		category:    CategoryWellness,
		readingTime: 6,
		content: `Emotional wellness is about understanding and managing your emotions in healthy ways.

Pillars:
- Self-awareness
- Emotional regulation
- Resilience
- Healthy relationships
- Purpose and meaning

Daily practices:
1. Check in with your emotions regularly
2. Journal your thoughts and feelings
3. Practice self-compassion
4. Set healthy boundaries
5. Seek support when needed

Resilience is not avoiding difficulty. It is bouncing back and learning from challenges.`,
	},
	{
		title:       "Leadership Through Service",
		category:    CategoryLeadership,
		readingTime: 5,
		content: `True leadership is not about authority. It is about inspiring and empowering others to reach their potential.

Servant leadership principles:
- Put others first
- Listen actively
- Build trust
- Empower team members
- Lead by example

Essential skills: vision, communication, empathy, adaptability and integrity.

Start by leading yourself. Manage your time, emotions and commitments, then extend that discipline to helping others.`,
	},
}

// seedNamespace scopes the name-based IDs of built-in articles.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://lifeadvance.app/articles"))

// SeedArticleID returns the stable identifier of a built-in article.
func SeedArticleID(title string) string {
	return uuid.NewSHA1(seedNamespace, []byte(title)).String()
}

// DefaultArticles returns the built-in article set, one per category, all
// unread and dated at loadedAt.
func DefaultArticles(loadedAt time.Time) []LearningArticle {
	articles := make([]LearningArticle, 0, len(seedArticles))
	for _, s := range seedArticles {
		articles = append(articles, LearningArticle{
			ID:          SeedArticleID(s.title),
			Title:       s.title,
			Category:    s.category,
			Content:     s.content,
			ReadingTime: s.readingTime,
			IsRead:      false,
			DateAdded:   loadedAt,
		})
	}
	return articles
}
