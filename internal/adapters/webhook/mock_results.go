package webhook

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
)

// DefaultMockDelay simulates the processing time of the remote workflow
const DefaultMockDelay = 2 * time.Second

// MockGenerator produces a fixed, deterministic result set without network access
type MockGenerator struct {
	delay time.Duration
}

// NewMockGenerator creates a generator that waits delay before answering
func NewMockGenerator(delay time.Duration) *MockGenerator {
	return &MockGenerator{delay: delay}
}

// Generate waits for the configured delay, then returns the mock results for content
func (g *MockGenerator) Generate(ctx context.Context, content string) (*domain.RepurposeResult, error) {
	logging.Logger.Info("Using mock results, webhook not configured", "delay", g.delay)

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return BuildMockResult(content), nil
}

// BuildMockResult returns the canned results for content. The same input
// always yields the same output.
func BuildMockResult(content string) *domain.RepurposeResult {
	return &domain.RepurposeResult{
		Success: true,
		Results: map[domain.Platform][]domain.Variant{
			domain.PlatformLinkedIn:  linkedInPosts(content),
			domain.PlatformTwitter:   twitterThreads(),
			domain.PlatformInstagram: instagramCaptions(),
			domain.PlatformEmail:     emailNewsletter(),
			domain.PlatformSummary:   contentSummary(content),
		},
	}
}

func linkedInPosts(content string) []domain.Variant {
	preview := domain.Preview(content, domain.PreviewLength)
	post := func(label, text string) domain.Variant {
		return domain.NewFlatVariant(domain.LabelType, label, text)
	}

	return []domain.Variant{
		post("Story-based", "🎯 Here's a story that changed everything:\n\n"+preview+"...\n\nThis taught me that consistency beats perfection.\n\nWhat's your take on this?"),
		post("Tips List", "📌 5 Key Takeaways:\n\n1. Start with the end in mind\n2. Focus on one thing at a time\n3. Ship early and iterate\n4. Listen to your users\n5. Never stop learning\n\nWhich resonates most with you?"),
		post("Insight", "💡 Most people think success is about working harder.\n\nBut I've learned it's about working smarter.\n\n"+preview+"...\n\nThe difference? Focus."),
		post("Question", "❓ Quick question for my network:\n\nHow do you decide what to work on when everything feels urgent?\n\nI just wrote about this: "+preview+"...\n\nWould love your perspective."),
		post("Announcement", "🚀 Just published something I'm proud of:\n\n"+preview+"...\n\nTook me 2 weeks to research and write.\n\nHope it helps you on your journey."),
	}
}

var twitterHooks = []string{
	"🧵 Thread: The ONE thing I wish I knew earlier",
	"🔥 Hot take: Most advice on this topic is wrong",
	"💰 How I [achieved X] in [Y time]",
	"⚡ Quick thread on what actually works",
	"🎯 The framework I use for [topic]",
	"🚀 Let me save you months of trial and error",
	"💡 Unpopular opinion:",
	"📊 Here's what the data actually shows",
	"🎓 What 3 years of [topic] taught me",
	"⭐ The truth about [topic] nobody talks about",
}

func twitterThreads() []domain.Variant {
	threads := make([]domain.Variant, 0, len(twitterHooks))
	for i, hook := range twitterHooks {
		parts := []string{
			hook,
			fmt.Sprintf("The conventional wisdom says [common belief].\n\nBut after %d years, I've learned it's more nuanced.", i+1),
			"Here's what actually matters:\n\n1. [Point 1]\n2. [Point 2]\n3. [Point 3]",
			"Most people focus on [wrong thing].\n\nBut the real key is [right thing].",
			"Here's a simple framework:\n\n→ Step 1: [Action]\n→ Step 2: [Action]\n→ Step 3: [Action]",
			"The biggest mistake I see?\n\n[Common mistake]",
			"Instead, try this:\n\n[Better approach]",
			"Real example:\n\n[Brief case study or data point]",
			"The results speak for themselves:\n\n• [Metric 1]\n• [Metric 2]\n• [Metric 3]",
			"Bottom line:\n\n[Key takeaway]",
			"Want to go deeper?\n\n[CTA or link]",
			"If you found this helpful:\n\n1. Follow me @yourusername\n2. RT the first tweet\n3. Share your thoughts below",
		}
		threads = append(threads, domain.NewThreadVariant(domain.LabelHook, hook, parts))
	}
	return threads
}

func instagramCaptions() []domain.Variant {
	caption := func(style, text string) domain.Variant {
		return domain.NewFlatVariant(domain.LabelStyle, style, text)
	}

	return []domain.Variant{
		caption("Motivational", "✨ Your daily reminder:\n\nSuccess isn't about being perfect.\nIt's about being consistent.\n\n💫 Keep showing up.\n💫 Keep learning.\n💫 Keep growing.\n\nThe compound effect is real.\n\n#motivation #contentcreator #entrepreneur #mindset #success"),
		caption("Educational", "📚 SAVE THIS POST\n\nThe 5 things I wish I knew earlier:\n\n1️⃣ Start before you're ready\n2️⃣ Focus on one thing\n3️⃣ Ship imperfect work\n4️⃣ Listen to feedback\n5️⃣ Never stop learning\n\nWhich one resonates most? 👇\n\n#education #tips #learning #growth #business"),
		caption("Story", "📖 STORY TIME\n\nTwo years ago, I had no idea where to start.\n\nToday? Complete different story.\n\nWhat changed?\n\nSwipe to find out ➡️\n\n#journey #transformation #entrepreneurship #inspiration #storytime"),
		caption("Behind the Scenes", "🎬 Behind the scenes of my process:\n\nThis is what creating content actually looks like.\n\nNot glamorous, but it works.\n\nThe secret? Consistency > Perfection\n\nDouble tap if you agree 💜\n\n#behindthescenes #contentcreation #reallife #authentic #creator"),
		caption("Value-Packed", "💎 FREE VALUE BOMB\n\nHere's the exact framework I use:\n\n→ [Step 1]\n→ [Step 2]\n→ [Step 3]\n\nSave this for later!\n\nDM me \"GUIDE\" for the full breakdown\n\n#value #free #framework #strategy #tips #business"),
	}
}

const emailSubject = "What I Learned About [Topic]"

const emailBody = `Hey there,

I've been thinking a lot about [topic] lately.

And I realized something important:

[Main insight]

Let me break it down:

━━━━━━━━━━━━━━━━━━━━

THE PROBLEM

Most people approach this wrong.

They focus on [common approach], which leads to [negative outcome].

But there's a better way.

━━━━━━━━━━━━━━━━━━━━

THE SOLUTION

Here's what actually works:

1. [Point 1]
   → [Explanation]

2. [Point 2]
   → [Explanation]

3. [Point 3]
   → [Explanation]

━━━━━━━━━━━━━━━━━━━━

REAL EXAMPLE

I tested this myself:

• Before: [Metric]
• After: [Metric]
• Time taken: [Time]

The difference? [Key factor]

━━━━━━━━━━━━━━━━━━━━

YOUR ACTION STEP

Here's what to do this week:

→ [Action 1]
→ [Action 2]
→ [Action 3]

━━━━━━━━━━━━━━━━━━━━

That's it for today!

Hit reply and let me know what you think.

[Your Name]

P.S. [Relevant P.S. or CTA]`

func emailNewsletter() []domain.Variant {
	newsletter := domain.NewFlatVariant(domain.LabelPositional, "", emailBody)
	newsletter.Subject = emailSubject
	return []domain.Variant{newsletter}
}

const summaryTitle = "Blog Post Summary"

// summaryTemplate takes the content length and the reading time in minutes
const summaryTemplate = `# Content Summary

## Key Points

1. **Main Idea**: [Primary theme or argument]

2. **Supporting Points**:
   - [Point 1]
   - [Point 2]
   - [Point 3]

3. **Actionable Takeaways**:
   - [Takeaway 1]
   - [Takeaway 2]
   - [Takeaway 3]

## Best Use Cases

This content is perfect for:
- LinkedIn: Focus on the professional insights
- Twitter: Break down into bite-sized threads
- Instagram: Use the visual/emotional elements
- Email: Expand on the how-to aspects

## Content Stats

- Original length: ~{{length}} characters
- Estimated reading time: {{minutes}} minutes
- Social posts generated: 25+
- Platforms covered: 5

## Recommended Posting Schedule

- LinkedIn: Monday/Wednesday mornings
- Twitter: Throughout the week (1 thread/day)
- Instagram: 3x per week
- Email: Weekend newsletter`

// charsPerReadingMinute is the reading speed used for the summary estimate
const charsPerReadingMinute = 1000

func contentSummary(content string) []domain.Variant {
	length := utf8.RuneCountInString(content)
	minutes := (length + charsPerReadingMinute - 1) / charsPerReadingMinute

	body := strings.NewReplacer(
		"{{length}}", fmt.Sprint(length),
		"{{minutes}}", fmt.Sprint(minutes),
	).Replace(summaryTemplate)

	return []domain.Variant{domain.NewFlatVariant(domain.LabelTitle, summaryTitle, body)}
}
