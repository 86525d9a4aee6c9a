package inspector

// In-page scripts evaluated against the live document. The overlay
// host is a custom element whose shadow root holds the highlight
// spans; nothing structural ties a host to the field it covers, so
// every script re-associates the two by bounding-box coincidence.
const jsHelpers = `
	const overlayTag = 'proofly-overlay';
	const spanAttr = 'data-proofly-issue';

	const lookupField = (fieldId) => {
		const field = document.getElementById(fieldId);
		if (!field || !(field instanceof HTMLElement)) return null;
		return field;
	};

	const fieldText = (field) => {
		if (field.value !== undefined && field.value !== null) return String(field.value);
		return field.textContent || '';
	};

	const findHost = (field, tolerance) => {
		const rect = field.getBoundingClientRect();
		const hosts = document.querySelectorAll(overlayTag);
		for (const host of hosts) {
			const hr = host.getBoundingClientRect();
			if (Math.abs(hr.top - rect.top) <= tolerance && Math.abs(hr.left - rect.left) <= tolerance) {
				return host;
			}
		}
		return null;
	};

	const findSpan = (host, issueId) => {
		const nodes = host.shadowRoot.querySelectorAll('[' + spanAttr + ']');
		for (const node of nodes) {
			if (node.getAttribute(spanAttr) === issueId) return node;
		}
		return null;
	};
`

var resolveHostScript = `(arg) => {` + jsHelpers + `
	const field = lookupField(arg.fieldId);
	if (!field) return null;
	const host = findHost(field, arg.tolerance);
	if (!host) return null;
	const hr = host.getBoundingClientRect();
	return { left: hr.left, top: hr.top, width: hr.width, height: hr.height };
}`

var hasHostScript = `(arg) => {` + jsHelpers + `
	const field = lookupField(arg.fieldId);
	if (!field) return false;
	return findHost(field, arg.tolerance) !== null;
}`

var extractHighlightsScript = `(arg) => {` + jsHelpers + `
	const field = lookupField(arg.fieldId);
	if (!field) return null;
	const host = findHost(field, arg.tolerance);
	if (!host || !host.shadowRoot) return null;
	const spans = [];
	host.shadowRoot.querySelectorAll('[' + spanAttr + ']').forEach((node) => {
		const r = node.getBoundingClientRect();
		spans.push({
			id: node.getAttribute(spanAttr) || '',
			left: r.left,
			top: r.top,
			width: r.width,
			height: r.height
		});
	});
	return { text: fieldText(field), spans: spans };
}`

var dispatchEventScript = `(arg) => {` + jsHelpers + `
	const field = lookupField(arg.fieldId);
	if (!field) return false;
	const host = findHost(field, arg.tolerance);
	if (!host || !host.shadowRoot) return false;
	const node = findSpan(host, arg.issueId);
	if (!node) return false;
	node.dispatchEvent(new MouseEvent(arg.type, {
		bubbles: true,
		cancelable: true,
		composed: true,
		view: window,
		clientX: arg.x,
		clientY: arg.y
	}));
	return true;
}`

var countEditableScript = `(arg) => {` + jsHelpers + `
	if (typeof CSS === 'undefined' || !CSS.highlights) {
		return { supported: false, fieldFound: false, count: 0 };
	}
	const field = lookupField(arg.fieldId);
	if (!field) {
		return { supported: true, fieldFound: false, count: 0 };
	}
	let count = 0;
	for (const name of arg.categories) {
		const registered = CSS.highlights.get(name);
		if (!registered) continue;
		for (const range of registered) {
			const container = range.commonAncestorContainer;
			const element = container.nodeType === Node.ELEMENT_NODE ? container : container.parentElement;
			if (element && field.contains(element)) count++;
		}
	}
	return { supported: true, fieldFound: true, count: count };
}`
