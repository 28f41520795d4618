package campaign

// LinkedIn reshuffles its markup between accounts and rollouts, so every
// affordance is probed through an ordered fallback list: specific selectors
// first, looser patterns last. These lists are the single extension point
// to update when the UI changes.

// directConnectSelectors match the inline Connect button on a profile.
var directConnectSelectors = []string{
	"button[aria-label*='Invite'][aria-label*='connect']",
	"button.pvs-profile-actions__action[aria-label*='connect']",
	"button[aria-label='Connect']",
	"button.artdeco-button--primary:has-text('Connect')",
	"button:has-text('Connect')",
}

// moreMenuSelectors match the overflow ("More actions") trigger used when
// Connect is hidden behind the dropdown.
var moreMenuSelectors = []string{
	"button[aria-label='More actions']",
	"button[aria-label*='More']",
	"button.artdeco-dropdown__trigger--placement-bottom",
	"button:has-text('More')",
}

// menuConnectSelectors match the Connect entry inside the opened dropdown.
var menuConnectSelectors = []string{
	"div[role='menu'] span:has-text('Connect')",
	"div.artdeco-dropdown__content li:has-text('Connect')",
	"div.artdeco-dropdown__item:has-text('Connect')",
	"li:has-text('Connect')",
}

// sendDialogSelectors match the send affordance in the invite dialog,
// covering the with-note and without-note phrasings.
var sendDialogSelectors = []string{
	"button[aria-label='Send without a note']",
	"button:has-text('Send without a note')",
	"button[aria-label='Send invitation']",
	"button[aria-label='Send now']",
	"button.artdeco-button--primary:has-text('Send')",
	"button:has-text('Send')",
}

// listingEntrySelectors match one member card in the group listing.
var listingEntrySelectors = []string{
	"li.artdeco-list__item",
	"li.members-list__item",
	"ul.scaffold-finite-scroll__content > li",
}

// profileLinkSelector matches the profile link inside a member card.
const profileLinkSelector = "a[href*='/in/']"

// degreeBadgeSelectors match the relationship-degree badge in a member card.
var degreeBadgeSelectors = []string{
	"span.artdeco-entity-lockup__degree",
	"span.member-analytics-addon__degree",
	"span.distance-badge",
}

// inviteSentSelectors match the card hint shown when an invite is already
// pending for that member.
var inviteSentSelectors = []string{
	"button[aria-label*='Pending']",
	"button:has-text('Pending')",
	"span.invite-sent",
}
