package theme

// Element is an addressable UI surface. Global elements apply everywhere
// unless a page-scoped override exists; page-scoped elements apply within a
// single page and fall back to their global class when unset.
type Element string

const (
	ElementSidebar         Element = "sidebar"
	ElementHeader          Element = "header"
	ElementCard            Element = "card"
	ElementWidget          Element = "widget"
	ElementButtonPrimary   Element = "button-primary"
	ElementButtonSecondary Element = "button-secondary"
	ElementInput           Element = "input"
	ElementModal           Element = "modal"

	ElementHomeBackground    Element = "home-background"
	ElementHomeTitle         Element = "home-title"
	ElementHomeWidgetCard    Element = "home-widget-card"
	ElementHomeQuickActions  Element = "home-quick-actions"
	ElementCalendarBG        Element = "calendar-background"
	ElementCalendarGrid      Element = "calendar-grid"
	ElementCalendarEventCard Element = "calendar-event-card"
	ElementChoresBG          Element = "chores-background"
	ElementChoresListCard    Element = "chores-list-card"
	ElementChoresProgress    Element = "chores-progress"
	ElementShoppingBG        Element = "shopping-background"
	ElementShoppingListCard  Element = "shopping-list-card"
	ElementShoppingAddBar    Element = "shopping-add-bar"
	ElementMessagesBG        Element = "messages-background"
	ElementMessagesThread    Element = "messages-thread-card"
	ElementMessagesCompose   Element = "messages-compose"
	ElementSettingsBG        Element = "settings-background"
	ElementSettingsPanel     Element = "settings-panel"
	ElementSettingsNav       Element = "settings-nav"

	// Addressable but deliberately absent from the border-fallback table;
	// the rule covers only the six pages above.
	ElementBudgetSummaryCard Element = "budget-summary-card"
	ElementMealsPlannerGrid  Element = "meals-planner-grid"
	ElementMealsRecipeCard   Element = "meals-recipe-card"
	ElementRecipesCard       Element = "recipes-card"
	ElementFamilyMemberCard  Element = "family-member-card"
	ElementPaidChoresCard    Element = "paid-chores-card"
)

var globalElements = []Element{
	ElementSidebar,
	ElementHeader,
	ElementCard,
	ElementWidget,
	ElementButtonPrimary,
	ElementButtonSecondary,
	ElementInput,
	ElementModal,
}

var pageElements = []Element{
	ElementHomeBackground,
	ElementHomeTitle,
	ElementHomeWidgetCard,
	ElementHomeQuickActions,
	ElementCalendarBG,
	ElementCalendarGrid,
	ElementCalendarEventCard,
	ElementChoresBG,
	ElementChoresListCard,
	ElementChoresProgress,
	ElementShoppingBG,
	ElementShoppingListCard,
	ElementShoppingAddBar,
	ElementMessagesBG,
	ElementMessagesThread,
	ElementMessagesCompose,
	ElementSettingsBG,
	ElementSettingsPanel,
	ElementSettingsNav,
	ElementBudgetSummaryCard,
	ElementMealsPlannerGrid,
	ElementMealsRecipeCard,
	ElementRecipesCard,
	ElementFamilyMemberCard,
	ElementPaidChoresCard,
}

// Short variable prefixes for the global classes; page-scoped elements keep
// their compound enum value as the prefix.
var elementPrefixes = map[Element]string{
	ElementButtonPrimary:   "btn-primary",
	ElementButtonSecondary: "btn-secondary",
}

// pageMembers maps each page-background element to the card/widget surfaces
// on that page that receive the translucent fallback border when the page
// gains a custom background.
var pageMembers = map[Element][]Element{
	ElementHomeBackground: {ElementHomeWidgetCard, ElementHomeQuickActions},
	ElementCalendarBG:     {ElementCalendarGrid, ElementCalendarEventCard},
	ElementChoresBG:       {ElementChoresListCard, ElementChoresProgress},
	ElementShoppingBG:     {ElementShoppingListCard, ElementShoppingAddBar},
	ElementMessagesBG:     {ElementMessagesThread, ElementMessagesCompose},
	ElementSettingsBG:     {ElementSettingsPanel, ElementSettingsNav},
}

// globalFallbacks pairs page-scoped surfaces with the global class whose
// defaults they inherit when no page override is present.
var globalFallbacks = map[Element]Element{
	ElementHomeWidgetCard:    ElementWidget,
	ElementHomeQuickActions:  ElementWidget,
	ElementCalendarGrid:      ElementCard,
	ElementCalendarEventCard: ElementCard,
	ElementChoresListCard:    ElementCard,
	ElementChoresProgress:    ElementWidget,
	ElementShoppingListCard:  ElementCard,
	ElementShoppingAddBar:    ElementInput,
	ElementMessagesThread:    ElementCard,
	ElementMessagesCompose:   ElementInput,
	ElementSettingsPanel:     ElementCard,
	ElementSettingsNav:       ElementSidebar,
	ElementBudgetSummaryCard: ElementCard,
	ElementMealsPlannerGrid:  ElementCard,
	ElementMealsRecipeCard:   ElementCard,
	ElementRecipesCard:       ElementCard,
	ElementFamilyMemberCard:  ElementCard,
	ElementPaidChoresCard:    ElementCard,
}

func GlobalElements() []Element {
	out := make([]Element, len(globalElements))
	copy(out, globalElements)
	return out
}

func PageElements() []Element {
	out := make([]Element, len(pageElements))
	copy(out, pageElements)
	return out
}

// AllElements returns globals first, then page-scoped surfaces, the order
// the resolver compiles overrides in.
func AllElements() []Element {
	out := make([]Element, 0, len(globalElements)+len(pageElements))
	out = append(out, globalElements...)
	out = append(out, pageElements...)
	return out
}

func IsGlobalElement(el Element) bool {
	for _, candidate := range globalElements {
		if candidate == el {
			return true
		}
	}
	return false
}

func IsKnownElement(el Element) bool {
	if IsGlobalElement(el) {
		return true
	}
	for _, candidate := range pageElements {
		if candidate == el {
			return true
		}
	}
	return false
}

// ElementPrefix returns the variable-name prefix an element's compiled
// variables are keyed under.
func ElementPrefix(el Element) string {
	if prefix, ok := elementPrefixes[el]; ok {
		return prefix
	}
	return string(el)
}

// PageMembers returns the registered card/widget members for a
// page-background element, or nil when the page is outside the fallback
// table.
func PageMembers(background Element) []Element {
	members, ok := pageMembers[background]
	if !ok {
		return nil
	}
	out := make([]Element, len(members))
	copy(out, members)
	return out
}

// PageBackgroundElements lists the backgrounds covered by the fallback
// table in a stable order.
func PageBackgroundElements() []Element {
	return []Element{
		ElementHomeBackground,
		ElementCalendarBG,
		ElementChoresBG,
		ElementShoppingBG,
		ElementMessagesBG,
		ElementSettingsBG,
	}
}

// GlobalFallback resolves the global class a page-scoped element inherits
// from. Global elements map to themselves.
func GlobalFallback(el Element) Element {
	if IsGlobalElement(el) {
		return el
	}
	if fallback, ok := globalFallbacks[el]; ok {
		return fallback
	}
	return ElementCard
}
