package odooui

import "odoo-steps/pkg/locator"

// Odoo 14 web client markup.

func menuItemLocator(text string) locator.Locator {
	return locator.Xf("//a[contains(@class, 'dropdown-toggle') and contains(normalize-space(), %s)]", text)
}

func submenuItemLocator(text string) locator.Locator {
	return locator.Xf("//a[contains(@class, 'dropdown-item')]/span[contains(normalize-space(), %s)]", text)
}

func textFieldLocator(name string) locator.Locator {
	return locator.Xf("//input[contains(@name, %s)]", name)
}

func selectFieldLocator(name string) locator.Locator {
	return locator.Xf("//select[contains(@name, %s)]", name)
}

func autocompleteLocator(name string) locator.Locator {
	return locator.Xf("//div[@name=%s]//input[contains(@class, 'o_input')]", name)
}

func dropdownItemLocator(text string) locator.Locator {
	return locator.Xf("//ul[@class='o_dropdown_menu dropdown-menu show']//a[contains(text(), %s)]", text)
}

func buttonLocator(text string) locator.Locator {
	return locator.Xf("//button[contains(text(), %s)] | //button//span[contains(text(), %s)]", text, text)
}

func formTabLocator(name string) locator.Locator {
	return locator.Xf("//a[contains(normalize-space(), %s) and @data-toggle='tab' and @role='tab']", name)
}

func columnHeaderLocator(name string) locator.Locator {
	return locator.Xf("//th[2][contains(text(), %s)]", name)
}

func appIconLocator(module string) locator.Locator {
	return locator.Xf("//span[@class='oe_menu_text' and contains(text(), %s)]", module)
}

func moduleDropdownLocator(module string) locator.Locator {
	return locator.Xf("//a[contains(@data-menu-xmlid, %s)]", module)
}

var (
	editButtonLocator   = locator.X("//button[contains(@class, 'o_form_button_edit')]")
	readonlyFormLocator = locator.X("//div[contains(@class, 'o_form_readonly')]")
	drawerToggleLocator = locator.X("//a[@data-toggle='dropdown']")
	treeFirstFields     = locator.X("//div[contains(@class, 'o_list_view')]//table[contains(@class, 'o_list_table')]/tbody[contains(@class, 'ui-sortable')]/tr/td[2]")
	loginFieldLocator   = locator.X("//input[@name='login']")
	passwdFieldLocator  = locator.X("//input[@name='password']")
)
