package service

const (
	verifyButtonText = "✅ Verify (I'm human)"

	promptTemplate = "Welcome, %s!\n\n" +
		"Please press the button below to verify you are human.\n" +
		"Until you verify, you cannot send messages."

	verifiedText = "✅ Verified! You can now chat.\nWelcome to Kindora community!"

	notForYouText = "This button is not for you."

	greetingText = "Hi! I'm Kindora Guard Bot.\n" +
		"Add me as admin to your group and I will protect it with a simple verify button."
)
