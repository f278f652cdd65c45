package decision

// referenceDefinitions is the authored step table. Orders are dense and
// zero-based.
var referenceDefinitions = []StepDefinition{
	{
		ID:    StepBudget,
		Order: 0,
		Title: "Build a simple spending plan",
		Why:   "Knowing where each dollar goes makes the rest of the plan possible.",
		HowBullets: []string{
			"List every source of take-home pay and the date it arrives.",
			"Write down the bills, needs, and regular wants you must cover each month.",
			"Match your paychecks to those costs so nothing is missed.",
		},
		Links: []Link{
			{Label: "CFPB budgeting worksheet", Href: "https://www.consumerfinance.gov/consumer-tools/budgeting/worksheet/"},
			{Label: "FDIC Money Smart spending plan", Href: "https://moneysmartcbi.fdic.gov/spending-plan"},
		},
	},
	{
		ID:    StepEmergencyFund,
		Order: 1,
		Title: "Set up an emergency fund",
		Why:   "Cash savings shields you from using credit when life happens.",
		HowBullets: []string{
			"Open a no-fee savings account you will not touch for everyday spending.",
			"Automate a transfer each payday, even if it is a small amount.",
			"Aim for one month of bare-bones costs, then build toward three.",
		},
		Links: []Link{
			{Label: "FDIC emergency savings tips", Href: "https://www.fdic.gov/resources/consumers/money/savings.html"},
			{Label: "America Saves emergency fund guide", Href: "https://americasaves.org/resource-center/save-for-emergencies/"},
		},
	},
	{
		ID:    StepEmployerMatch,
		Order: 2,
		Title: "Capture your employer match",
		Why:   "Leaving matching dollars is the same as passing up free pay.",
		HowBullets: []string{
			"Review your plan summary to confirm the match formula and vesting rules.",
			"Increase your contribution to at least the percentage that earns the full match.",
			"Set reminders to verify the match posts with each paycheck.",
		},
		Links: []Link{
			{Label: "DOL guide to workplace plans", Href: "https://www.dol.gov/sites/dolgov/files/ebsa/about-ebsa/our-activities/resource-center/publications/savings-fitness.pdf"},
			{Label: "FINRA employer match explainer", Href: "https://www.finra.org/investors/learn-to-invest/types-investments/retirement/employer-sponsored-plans"},
		},
	},
	{
		ID:    StepHighAPRDebt,
		Order: 3,
		Title: "Knock out high interest debt",
		Why:   "High APR balances cost more than most investments earn.",
		HowBullets: []string{
			"List each credit card or loan with its APR and minimum payment.",
			"Pay the minimums on all debts and send any extra money to the highest APR.",
			"Call lenders about hardship programs or lower-rate options if you fall behind.",
		},
		Links: []Link{
			{Label: "FTC guidance on dealing with debt", Href: "https://consumer.ftc.gov/articles/dealing-debt"},
			{Label: "NFCC certified credit counseling", Href: "https://www.nfcc.org/get-help/"},
		},
	},
	{
		ID:    StepIRA,
		Order: 4,
		Title: "Open or fund an IRA",
		Why:   "An IRA adds tax-advantaged savings for your future self.",
		HowBullets: []string{
			"Choose between a Roth or Traditional IRA based on your expected tax rate.",
			"Open the account at a low-cost provider with no annual maintenance fee.",
			"Automate monthly contributions that fit your spending plan.",
		},
		Links: []Link{
			{Label: "IRS IRA contribution rules", Href: "https://www.irs.gov/retirement-plans/individual-retirement-arrangements-iras"},
			{Label: "FINRA IRA basics", Href: "https://www.finra.org/investors/learn-to-invest/types-investments/retirement/iras"},
		},
	},
	{
		ID:    StepIncreaseWorkplaceRetirement,
		Order: 5,
		Title: "Increase workplace retirement savings",
		Why:   "Small contribution bumps now build large balances later.",
		HowBullets: []string{
			"Check your plan's annual contribution limits for this year.",
			"Raise your deferral rate by 1–2% and line it up with a pay increase.",
			"Review your investment mix to confirm it matches your target risk level.",
		},
		Links: []Link{
			{Label: "DOL contribution limit overview", Href: "https://www.dol.gov/general/topic/retirement/401k"},
			{Label: "Investor.gov compound interest calculator", Href: "https://www.investor.gov/financial-tools-calculators/calculators/compound-interest-calculator"},
		},
	},
	{
		ID:    StepHSA,
		Order: 6,
		Title: "Use a Health Savings Account",
		Why:   "HSAs offer triple tax benefits for health costs.",
		HowBullets: []string{
			"Confirm you are enrolled in an HSA-eligible high deductible health plan.",
			"Set contributions through payroll to capture the tax break.",
			"Save receipts so you can reimburse yourself later tax-free.",
		},
		Links: []Link{
			{Label: "Treasury overview of HSAs", Href: "https://www.treasury.gov/resource-center/faqs/Taxes/Pages/Health-Savings-Accounts.aspx"},
			{Label: "Healthcare.gov HSA explainer", Href: "https://www.healthcare.gov/high-deductible-health-plans/"},
		},
	},
	{
		ID:    Step529,
		Order: 7,
		Title: "Start a 529 education fund",
		Why:   "529 plans keep education savings growing tax-free.",
		HowBullets: []string{
			"Compare your state's plan with low-fee national options.",
			"Name a beneficiary and automate monthly transfers.",
			"Select an age-based portfolio that adjusts risk over time.",
		},
		Links: []Link{
			{Label: "SEC 529 plan highpoints", Href: "https://www.sec.gov/fast-answers/answers529htm.html"},
			{Label: "Federal Student Aid saving guide", Href: "https://studentaid.gov/resources/prepare-for-college/choosing-schools/save"},
		},
	},
	{
		ID:    StepDownPayment,
		Order: 8,
		Title: "Plan a down payment fund",
		Why:   "Dedicated savings keeps home goals on track.",
		HowBullets: []string{
			"Estimate your target price range and set a goal of 5–20% for the down payment.",
			"Place the savings in a high-yield account or CD to protect the timeline.",
			"Automate transfers each payday and track progress every quarter.",
		},
		Links: []Link{
			{Label: "HUD homebuyer tools", Href: "https://www.hud.gov/topics/buying_a_home"},
			{Label: "CFPB down payment guide", Href: "https://www.consumerfinance.gov/owning-a-home/down-payment/"},
		},
	},
	{
		ID:    StepTaxable,
		Order: 9,
		Title: "Invest in a taxable brokerage account",
		Why:   "Taxable investing grows wealth once tax-advantaged buckets are full.",
		HowBullets: []string{
			"Open a low-cost brokerage account that supports automatic investing.",
			"Use broad-market index funds and reinvest dividends.",
			"Track cost basis and plan for the taxes due on gains each year.",
		},
		Links: []Link{
			{Label: "SEC beginner investing guide", Href: "https://www.sec.gov/investor/pubs/ib_beginnerstrategies.pdf"},
			{Label: "FINRA brokerage account overview", Href: "https://www.finra.org/investors/learn-to-invest/types-investments/brokerage-accounts"},
		},
	},
}

// Definitions returns a copy of the reference step table.
func Definitions() []StepDefinition {
	out := make([]StepDefinition, len(referenceDefinitions))
	for i, def := range referenceDefinitions {
		out[i] = def.Clone()
	}
	return out
}

// Definition looks up a reference definition by id.
func Definition(id StepID) (StepDefinition, bool) {
	for _, def := range referenceDefinitions {
		if def.ID == id {
			return def.Clone(), true
		}
	}
	return StepDefinition{}, false
}
