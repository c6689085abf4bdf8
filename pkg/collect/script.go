package collect

// vitalsScript installs buffered PerformanceObservers as soon as the document
// starts loading. Metrics accumulate on window globals that metricsScript
// reads after the settle delay.
const vitalsScript = `(() => {
	window.__seolint = { lcp: null, cls: 0, inp: null };
	if (!('PerformanceObserver' in window)) return;

	try {
		new PerformanceObserver((list) => {
			for (const entry of list.getEntries()) {
				const t = entry.renderTime || entry.loadTime || entry.startTime || 0;
				if (!window.__seolint.lcp || t > window.__seolint.lcp) window.__seolint.lcp = t;
			}
		}).observe({ type: 'largest-contentful-paint', buffered: true });
	} catch (_) {}

	try {
		new PerformanceObserver((list) => {
			for (const entry of list.getEntries()) {
				if (!entry.hadRecentInput) window.__seolint.cls += (entry.value || 0);
			}
		}).observe({ type: 'layout-shift', buffered: true });
	} catch (_) {}

	try {
		new PerformanceObserver((list) => {
			for (const entry of list.getEntries()) {
				const et = entry.name || '';
				if (/click|keydown|pointerdown|pointerup|mousedown|mouseup|touchstart|touchend/i.test(et)) {
					const d = entry.duration || 0;
					if (!window.__seolint.inp || d > window.__seolint.inp) window.__seolint.inp = d;
				}
			}
		}).observe({ type: 'event', buffered: true, durationThreshold: 0 });
	} catch (_) {}
})();`

// metricsScript reads the accumulated vitals plus navigation timing in one
// round trip.
const metricsScript = `(() => {
	const m = window.__seolint || { lcp: null, cls: 0, inp: null };
	let responseStart = 0, loadEventEnd = 0;
	try {
		const nav = performance.getEntriesByType('navigation');
		if (nav && nav.length) {
			responseStart = nav[0].responseStart || 0;
			loadEventEnd = nav[0].loadEventEnd || 0;
		}
	} catch (_) {}
	return {
		lcp: m.lcp,
		cls: m.cls,
		inp: m.inp,
		responseStart: responseStart,
		loadEventEnd: loadEventEnd
	};
})();`
