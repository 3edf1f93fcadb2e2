package classifier

const clarificationResponse = "I'd love to help you find the perfect tool! Could you tell me a bit more about what you're trying to accomplish in your classroom? The more specific you can be, the better I can assist you."

// Pools whose entries contain %s are formatted with the user's most recent
// query (openings) or the tool name (tool intros).

var clearHelpfulContextOpenings = []string{
	"Great! I see you've been working on %s. Here's what I'd recommend next:",
	"Perfect timing! Since you've been focusing on %s, this will complement that work nicely:",
	"Building on your recent work with %s, here's exactly what you need:",
	"I noticed you've been exploring %s. This next tool will fit perfectly:",
	"Since you're already working on %s, let's add this to your toolkit:",
	"Following up on your %s work, here's a great next step:",
}

var clearHelpfulOpenings = []string{
	"I've got just the thing for you!",
	"Here's what I'd recommend:",
	"I think this will be perfect for what you need:",
	"Let me help you with this:",
	"Here's exactly what you're looking for:",
	"I found the perfect tool for your situation:",
	"This should be exactly what you need:",
	"Let me point you in the right direction:",
}

var clearHelpfulBenefitIntros = []string{
	"This will be especially helpful because",
	"Perfect for your situation since",
	"This works great when",
	"You'll find this particularly useful because",
}

var clearHelpfulClosings = []string{
	"Try it out and let me know how it works for you!",
	"Give it a try - I think you'll find it really helpful!",
	"Hope this makes your teaching life a bit easier!",
	"Let me know if you need help with anything else!",
	"I'd love to hear how this works out for you!",
	"Feel free to ask if you need more suggestions!",
	"Hope this is exactly what you were looking for!",
	"Let me know if you want to explore more options!",
}

var supportiveContextOpenings = []string{
	"I can see you've been putting a lot of thought into %s. Here's something that should help:",
	"You're doing great work with %s! This next step will build on that perfectly:",
	"Since you've been working on %s, I think you'll really appreciate this tool:",
	"I love seeing your dedication to %s. Here's what I'd suggest next:",
	"You're making real progress with %s. This will take it even further:",
	"Building on your thoughtful work with %s, here's a perfect addition:",
	"Your focus on %s shows you really care about your students. Here's what I recommend:",
}

var challengeWords = []string{"challenge", "difficult", "hard", "struggle", "overwhelmed", "stressed"}

var supportiveUnderstandingStarts = []string{
	"I understand this can be challenging. Let me help you find something that'll make it easier:",
	"Teaching challenges are part of the job, but you don't have to face them alone. Here's what can help:",
	"I can see this is something you're working through. Let me suggest a tool that should help:",
	"These kinds of challenges are what make teaching both difficult and rewarding. Here's support:",
	"You're tackling something important here. Let me help you find the right solution:",
}

var supportiveStarts = []string{
	"Teaching is such important work, and I'm here to help make it easier:",
	"I know how much you care about your students. Here's a tool that can help:",
	"You're looking for ways to improve your teaching - I love that! Here's what I suggest:",
	"Your dedication to your students really shows. Here's something that'll support your work:",
	"I can tell you're a thoughtful teacher. Here's a tool that matches your approach:",
	"You're always thinking about how to do better for your students. Here's what I recommend:",
	"Your commitment to excellence is inspiring. Let me help you with this:",
}

var supportiveToolIntros = []string{
	"The **%s** is designed exactly for situations like yours.",
	"I think you'll find the **%s** really helpful.",
	"The **%s** should make this much easier for you.",
	"Many teachers love the **%s** for this exact reason.",
	"The **%s** is perfect for what you're trying to accomplish.",
	"I've seen great results when teachers use the **%s** for this.",
	"The **%s** will be a game-changer for your situation.",
	"You'll appreciate how the **%s** simplifies this process.",
}

var supportiveClosings = []string{
	"You're doing amazing work. Remember, every small step makes a difference for your students!",
	"Keep up the great work - your students are lucky to have someone who cares so much!",
	"You're making a real difference in your students' lives. I'm here if you need more help!",
	"Your dedication to your students is inspiring. Feel free to reach out anytime!",
	"You're on the right track. Teaching is challenging, but you're handling it beautifully!",
	"Remember, you're doing important work. Every effort you make matters to your students!",
	"You've got this! Your thoughtful approach to teaching really shows.",
	"Keep being the amazing teacher you are. Your students benefit from your care every day!",
}

var practicalContextOpenings = []string{
	"Following up on your %s work, here's what you need:",
	"To build on your %s, I'd go with this:",
	"Since you've been working on %s, this is the logical next step:",
	"Based on your %s focus, here's the best tool:",
	"Continuing your %s work, this will be perfect:",
	"For your %s needs, here's the most efficient solution:",
}

var practicalStarts = []string{
	"Here's exactly what you need:",
	"The best tool for this is:",
	"I'd recommend this approach:",
	"This will solve your problem:",
	"Here's the most efficient solution:",
	"This is your best option:",
	"The quickest way to handle this:",
	"Here's what will work best:",
}

var practicalBenefits = []string{
	"Why this works: It's specifically designed for your situation and will save you time.",
	"The advantage: It's built for exactly what you need and streamlines the process.",
	"Why it's effective: It handles this task efficiently and gets results quickly.",
	"The benefit: It's designed to solve this specific problem and save you effort.",
	"Why I recommend it: It's proven to work well for this exact situation.",
	"The key: It's tailored for your needs and eliminates the guesswork.",
}

var practicalClosings = []string{
	"That should get you sorted. Let me know if you need anything else!",
	"This should handle what you need. Feel free to ask if you want more options!",
	"That's the most direct solution. Reach out if you need additional help!",
	"This will get the job done efficiently. Let me know how it works!",
	"That should solve your problem quickly. Ask if you need more suggestions!",
	"This is your most straightforward option. Happy to help with anything else!",
}

var encouragingContextOpenings = []string{
	"I love seeing your dedication to %s! Here's what will take it to the next level:",
	"You're building something great with your %s work. This will be the perfect addition:",
	"Your focus on %s shows real commitment to your students. Here's what I'd add:",
	"The progress you're making with %s is impressive! Here's what comes next:",
	"Your thoughtful approach to %s is exactly what great teachers do. Here's more support:",
	"I can see how much care you're putting into %s. This will amplify that effort:",
	"Your students are so lucky to have someone focused on %s like you are. Here's what I suggest:",
}

var encouragingStarts = []string{
	"You're taking all the right steps to improve your teaching!",
	"I can tell you really care about giving your students the best experience.",
	"This is exactly the kind of thinking that makes great teachers!",
	"Your students are lucky to have someone who thinks this way!",
	"Your commitment to excellence really shows in everything you do.",
	"I love seeing teachers who are always looking for ways to improve!",
	"You're approaching this with exactly the right mindset.",
	"This kind of dedication is what makes teaching so impactful!",
}

var encouragingToolIntros = []string{
	"The **%s** is going to be a game-changer for you.",
	"You'll love how the **%s** streamlines this process.",
	"The **%s** is exactly what innovative teachers like you need.",
	"I'm excited for you to try the **%s** - it's going to make such a difference!",
	"The **%s** will transform how you handle this.",
	"You're going to see amazing results with the **%s**.",
	"The **%s** is perfect for teachers who care about quality like you do.",
	"I can already imagine how much the **%s** will help your students!",
}

var encouragingClosings = []string{
	"Your students are going to benefit so much from your thoughtful approach!",
	"Keep up the fantastic work - you're making a real difference!",
	"I can't wait to hear about the positive impact this has on your classroom!",
	"You're doing incredible work. Your dedication shows in everything you do!",
	"Your students are so fortunate to have a teacher who cares this much!",
	"The effort you put in really makes a difference - keep being amazing!",
	"You're creating such a positive impact on your students' lives!",
	"Your passion for teaching is inspiring. Keep up the excellent work!",
}
